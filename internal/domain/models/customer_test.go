package models

import "testing"

func TestToggleSpecialPrice(t *testing.T) {
	base := []SpecialPrice{{ProductID: "p1", Price: 10}, {ProductID: "p2", Price: 20}}

	added := ToggleSpecialPrice(base, SpecialPrice{ProductID: "p3", Price: 30})
	if len(added) != 3 || added[2].ProductID != "p3" {
		t.Fatalf("expected p3 appended, got %+v", added)
	}

	removed := ToggleSpecialPrice(base, SpecialPrice{ProductID: "p1"})
	if len(removed) != 1 || removed[0].ProductID != "p2" {
		t.Fatalf("expected only p2 left, got %+v", removed)
	}

	if len(base) != 2 || base[0].ProductID != "p1" {
		t.Fatalf("input slice was modified: %+v", base)
	}
}

func TestSpecialPriceFromProductDefaultsToSellPrice(t *testing.T) {
	p := Product{ID: "p1", Brand: "Honda", SellPrice: 125000, WarehousePosition: WarehouseFinished}
	sp := SpecialPriceFromProduct(p)
	if sp.ProductID != "p1" || sp.Price != 125000 || sp.SellPrice != 125000 {
		t.Fatalf("unexpected candidate %+v", sp)
	}
}
