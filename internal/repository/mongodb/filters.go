package mongodb

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"go.mongodb.org/mongo-driver/bson"
)

// prefixUpperBound closes a lexicographic prefix range. U+F8FF sorts after
// the characters used in product names.
const prefixUpperBound = "\uf8ff"

// BrandVariants returns the three spellings a brand prefix is searched with:
// as typed, first letter capitalized, and lowercase. Range queries are case
// sensitive, so each spelling gets its own clause.
func BrandVariants(search string) []string {
	return []string{search, capitalizeFirst(search), strings.ToLower(search)}
}

// BrandPrefixFilter builds an OR of three range clauses, one per variant:
// brand >= v AND brand <= v+prefixUpperBound.
func BrandPrefixFilter(search string) bson.M {
	variants := BrandVariants(search)
	clauses := make(bson.A, 0, len(variants))
	for _, v := range variants {
		clauses = append(clauses, bson.M{"$and": bson.A{
			bson.M{"brand": bson.M{"$gte": v}},
			bson.M{"brand": bson.M{"$lte": v + prefixUpperBound}},
		}})
	}
	return bson.M{"$or": clauses}
}

// SupplierWarehouseFilter matches products stored in one warehouse, narrowed
// to one supplier when supplierID is set.
func SupplierWarehouseFilter(supplierID, warehouse string) bson.D {
	filter := bson.D{{Key: "warehouse_position", Value: warehouse}}
	if supplierID != "" {
		filter = append(filter, bson.E{Key: "supplier", Value: supplierID})
	}
	return filter
}

func capitalizeFirst(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if r == utf8.RuneError {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
