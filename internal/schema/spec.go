package schema

import "strings"

// Kind is the coercion target for a column. Anything not listed in a
// table spec stays KindText.
type Kind int

const (
	KindText Kind = iota
	KindInt
	KindFloat
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindTime:
		return "timestamp"
	default:
		return "text"
	}
}

// Spec describes one pipeline table and its CSV contract.
type Spec struct {
	Table    string
	Required []string
	Kinds    map[string]Kind
}

// FileName returns the CSV file name the loader expects for this table.
func (s Spec) FileName() string {
	return s.Table + ".csv"
}

// KindOf returns the coercion kind for a (normalized) column name.
func (s Spec) KindOf(column string) Kind {
	if k, ok := s.Kinds[column]; ok {
		return k
	}
	return KindText
}

// Specs returns the five pipeline tables in dependency order
// (parents before children).
func Specs() []Spec {
	return []Spec{
		{
			Table:    "customers",
			Required: []string{"customer_id", "full_name", "email", "phone", "city", "created_at"},
			Kinds: map[string]Kind{
				"customer_id": KindInt,
				"phone":       KindFloat,
				"created_at":  KindTime,
			},
		},
		{
			Table:    "products",
			Required: []string{"product_id", "product_name", "category", "price", "stock_qty"},
			Kinds: map[string]Kind{
				"product_id": KindInt,
				"price":      KindFloat,
				"stock_qty":  KindInt,
			},
		},
		{
			Table:    "orders",
			Required: []string{"order_id", "customer_id", "order_date", "status", "total_amount"},
			Kinds: map[string]Kind{
				"order_id":     KindInt,
				"customer_id":  KindInt,
				"order_date":   KindTime,
				"total_amount": KindFloat,
			},
		},
		{
			Table:    "order_items",
			Required: []string{"item_id", "order_id", "product_id", "quantity", "unit_price"},
			Kinds: map[string]Kind{
				"item_id":    KindInt,
				"order_id":   KindInt,
				"product_id": KindInt,
				"quantity":   KindInt,
				"unit_price": KindFloat,
			},
		},
		{
			Table:    "payments",
			Required: []string{"payment_id", "order_id", "payment_method", "payment_date", "amount"},
			Kinds: map[string]Kind{
				"payment_id":   KindInt,
				"order_id":     KindInt,
				"payment_date": KindTime,
				"amount":       KindFloat,
			},
		},
	}
}

// NormalizeColumn lowercases and trims a raw CSV header cell.
func NormalizeColumn(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// NormalizeHeader normalizes every cell of a CSV header row.
func NormalizeHeader(header []string) []string {
	out := make([]string, len(header))
	for i, h := range header {
		out[i] = NormalizeColumn(h)
	}
	return out
}

// Validate checks a normalized header against the spec's required columns.
// Returns a *MissingColumnsError listing every absent column.
func (s Spec) Validate(header []string) error {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[NormalizeColumn(h)] = true
	}

	var missing []string
	for _, col := range s.Required {
		if !present[col] {
			missing = append(missing, col)
		}
	}
	if len(missing) > 0 {
		return &MissingColumnsError{Table: s.Table, Columns: missing}
	}
	return nil
}
