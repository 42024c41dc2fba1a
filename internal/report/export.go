package report

import (
	"archive/zip"
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/MrJamesThe3rd/clubshop/internal/transaction"
)

var csvHeader = []string{
	"transaction_id", "date", "status", "club", "age_group", "division", "currency",
	"product_id", "product_name", "category", "quantity", "installment_months", "total_price",
}

// WriteCSV writes one row per purchased item. Transactions without items
// are written as a single row with empty item columns.
func WriteCSV(w io.Writer, txs []*transaction.Transaction) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, tx := range txs {
		base := []string{
			tx.ID,
			tx.Timestamp.Format(time.RFC3339),
			string(tx.Status),
			tx.Club,
			tx.AgeGroup,
			tx.Division,
			tx.Currency,
		}

		if len(tx.Items) == 0 {
			if err := cw.Write(append(base, "", "", "", "", "", "")); err != nil {
				return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
			}

			continue
		}

		for _, it := range tx.Items {
			months := ""
			if it.InstallmentMonths != nil {
				months = strconv.Itoa(*it.InstallmentMonths)
			}

			row := append(base[:len(base):len(base)],
				it.ProductID,
				it.ProductName,
				it.Category,
				strconv.Itoa(it.Quantity),
				months,
				it.TotalPrice.StringFixed(2),
			)

			if err := cw.Write(row); err != nil {
				return fmt.Errorf("writing transaction %s: %w", tx.ID, err)
			}
		}
	}

	cw.Flush()

	return cw.Error()
}

// WriteArchive writes a zip holding the CSV export and the text summary
// of v.
func WriteArchive(w io.Writer, v View) error {
	zw := zip.NewWriter(w)

	f, err := zw.Create("transactions.csv")
	if err != nil {
		return fmt.Errorf("creating csv entry: %w", err)
	}

	if err := WriteCSV(f, v.Transactions); err != nil {
		return err
	}

	f, err = zw.Create("summary.txt")
	if err != nil {
		return fmt.Errorf("creating summary entry: %w", err)
	}

	if _, err := io.WriteString(f, Summary(v)); err != nil {
		return fmt.Errorf("writing summary: %w", err)
	}

	return zw.Close()
}
