package reporting

import (
	"fmt"
	"io"

	"github.com/kbukum/edukit/logger"
	"github.com/kbukum/edukit/util"
	"github.com/kbukum/edukit/validation"
)

// LowStockThreshold is the stock level below which an item is reported.
const LowStockThreshold = 3

// UnknownItem names items that carry no name.
const UnknownItem = "Unknown"

// Item is one inventory record. Name and Stock are optional.
type Item struct {
	Name  *string `json:"item,omitempty" yaml:"item,omitempty"`
	Stock *int    `json:"stock,omitempty" yaml:"stock,omitempty"`
	Price float64 `json:"price" yaml:"price"`
}

// ItemName returns the item name, or UnknownItem when it is absent.
func (i Item) ItemName() string {
	return util.DerefOr(i.Name, UnknownItem)
}

// StockLevel returns the stock count, or 0 when it is absent.
func (i Item) StockLevel() int {
	return util.Deref(i.Stock)
}

// AlertLevel grades a stock alert.
type AlertLevel string

const (
	AlertLow      AlertLevel = "LOW"
	AlertCritical AlertLevel = "CRITICAL"
)

// StockAlert reports an item that is running low or out of stock.
type StockAlert struct {
	Item  string     `json:"item" yaml:"item"`
	Stock int        `json:"stock" yaml:"stock"`
	Level AlertLevel `json:"level" yaml:"level"`
}

func (a StockAlert) String() string {
	if a.Level == AlertCritical {
		return fmt.Sprintf("CRITICAL: %s is OUT OF STOCK.", a.Item)
	}
	return fmt.Sprintf("WARNING: Low stock on %s (Only %d left!)", a.Item, a.Stock)
}

// InventoryAlerts returns an alert for each item with a stock of zero
// (critical) or between zero and LowStockThreshold (low), in input order.
// Negative stock is not reported.
func InventoryAlerts(items []Item) ([]StockAlert, error) {
	if err := validation.New().NotEmpty("inventory", len(items)).Err(); err != nil {
		return nil, err
	}

	alerts := make([]StockAlert, 0)
	for _, it := range items {
		stock := it.StockLevel()
		switch {
		case stock == 0:
			alerts = append(alerts, StockAlert{Item: it.ItemName(), Stock: stock, Level: AlertCritical})
		case stock > 0 && stock < LowStockThreshold:
			alerts = append(alerts, StockAlert{Item: it.ItemName(), Stock: stock, Level: AlertLow})
		}
	}

	logger.Get("reporting").Debug("checked inventory",
		logger.Fields(logger.FieldOperation, "inventory", logger.FieldCount, len(items), "alerts", len(alerts)))
	return alerts, nil
}

// FilterInventory writes a low-stock report for items to w.
func FilterInventory(w io.Writer, items []Item) error {
	alerts, err := InventoryAlerts(items)
	if err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "\n--- Low Stock Alert (Below %d items) ---\n", LowStockThreshold); err != nil {
		return err
	}
	for _, a := range alerts {
		if _, err := fmt.Fprintln(w, a); err != nil {
			return err
		}
	}
	return nil
}
