package models

import "testing"

func TestStockModeHistoryType(t *testing.T) {
	if ModePurchase.HistoryType() != StockHistoryPurchase {
		t.Fatal("purchase mode should map to purchase history")
	}
	if ModeFromOtherWarehouse.HistoryType() != StockHistoryTransfer {
		t.Fatal("warehouse transfer should map to transfer history")
	}
}

func TestIsWarehouse(t *testing.T) {
	cases := map[string]bool{
		WarehouseFinished: true,
		WarehouseRaw:      true,
		"gudang jadi":     false,
		"":                false,
	}
	for name, want := range cases {
		if got := IsWarehouse(name); got != want {
			t.Errorf("IsWarehouse(%q) = %v, want %v", name, got, want)
		}
	}
}
