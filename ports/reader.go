package ports

import "dealqa/domain/deal"

// RowSource loads the input table, rows in sheet order.
type RowSource interface {
	ReadSheet() (*deal.Sheet, error)
}
