package engine

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/brianvoe/gofakeit/v6"
)

const seedTimeLayout = "2006-01-02 15:04:05"

var (
	orderStatuses  = []string{"pending", "shipped", "delivered", "cancelled"}
	paymentMethods = []string{"card", "cash", "upi", "bank_transfer"}
	categories     = []string{"Electronics", "Clothing", "Home & Kitchen", "Books", "Toys", "Sports", "Beauty"}
)

// SeedCSVFiles writes demo fixtures for all five pipeline tables into dir.
// Identifiers are referentially consistent (orders point at generated
// customers and products, items and payments point at generated orders) so
// the output loads without warnings. count controls the number of customers,
// products, and orders.
func SeedCSVFiles(dir string, count int) error {
	if count < 1 {
		return fmt.Errorf("count must be positive, got %d", count)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}

	now := time.Now()
	earliest := now.AddDate(-2, 0, 0)

	// customers
	customers := make([][]string, 0, count)
	for id := 1; id <= count; id++ {
		created := gofakeit.DateRange(earliest, now)
		customers = append(customers, []string{
			strconv.Itoa(id),
			gofakeit.Name(),
			gofakeit.Email(),
			gofakeit.Phone(),
			gofakeit.City(),
			created.Format(seedTimeLayout),
		})
	}
	if err := writeCSV(filepath.Join(dir, "customers.csv"),
		[]string{"customer_id", "full_name", "email", "phone", "city", "created_at"}, customers); err != nil {
		return err
	}

	// products
	products := make([][]string, 0, count)
	for id := 1; id <= count; id++ {
		products = append(products, []string{
			strconv.Itoa(id),
			gofakeit.ProductName(),
			gofakeit.RandomString(categories),
			fmt.Sprintf("%.2f", gofakeit.Price(5, 500)),
			strconv.Itoa(gofakeit.Number(0, 500)),
		})
	}
	if err := writeCSV(filepath.Join(dir, "products.csv"),
		[]string{"product_id", "product_name", "category", "price", "stock_qty"}, products); err != nil {
		return err
	}

	// orders, order_items, payments
	// Item lines drive the order total so the amounts stay consistent.
	var orders, items, payments [][]string
	itemID := 1
	for orderID := 1; orderID <= count; orderID++ {
		orderDate := gofakeit.DateRange(earliest, now)
		total := 0.0
		for n := gofakeit.Number(1, 3); n > 0; n-- {
			qty := gofakeit.Number(1, 5)
			unit := gofakeit.Price(5, 500)
			total += float64(qty) * unit
			items = append(items, []string{
				strconv.Itoa(itemID),
				strconv.Itoa(orderID),
				strconv.Itoa(gofakeit.Number(1, count)),
				strconv.Itoa(qty),
				fmt.Sprintf("%.2f", unit),
			})
			itemID++
		}
		orders = append(orders, []string{
			strconv.Itoa(orderID),
			strconv.Itoa(gofakeit.Number(1, count)),
			orderDate.Format(seedTimeLayout),
			gofakeit.RandomString(orderStatuses),
			fmt.Sprintf("%.2f", total),
		})
		payments = append(payments, []string{
			strconv.Itoa(orderID),
			strconv.Itoa(orderID),
			gofakeit.RandomString(paymentMethods),
			orderDate.AddDate(0, 0, gofakeit.Number(0, 3)).Format(seedTimeLayout),
			fmt.Sprintf("%.2f", total),
		})
	}

	if err := writeCSV(filepath.Join(dir, "orders.csv"),
		[]string{"order_id", "customer_id", "order_date", "status", "total_amount"}, orders); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, "order_items.csv"),
		[]string{"item_id", "order_id", "product_id", "quantity", "unit_price"}, items); err != nil {
		return err
	}
	if err := writeCSV(filepath.Join(dir, "payments.csv"),
		[]string{"payment_id", "order_id", "payment_method", "payment_date", "amount"}, payments); err != nil {
		return err
	}

	return nil
}

func writeCSV(path string, header []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write header to %s: %w", path, err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row to %s: %w", path, err)
		}
	}
	w.Flush()
	return w.Error()
}
