package statements

import "fmt"

// Category classifies a transaction for statement aggregation. The set of
// categories is closed: parsing any other string is an error, so that a
// mistyped category fails at load time instead of silently vanishing from
// every statement.
type Category string

const (
	CatRevenue         Category = "Revenue"
	CatCOGS            Category = "COGS"
	CatSalesMarketing  Category = "Sales & Marketing"
	CatGeneralAdmin    Category = "General & Administrative"
	CatResearchDev     Category = "R&D"
	CatInterestExpense Category = "Interest Expense"
	CatOtherIncome     Category = "Other Income"
	CatAsset           Category = "Asset"
	CatLiability       Category = "Liability"
	CatEquity          Category = "Equity"
)

// Categories lists every known category, in taxonomy order.
func Categories() []Category {
	return []Category{
		CatRevenue,
		CatCOGS,
		CatSalesMarketing,
		CatGeneralAdmin,
		CatResearchDev,
		CatInterestExpense,
		CatOtherIncome,
		CatAsset,
		CatLiability,
		CatEquity,
	}
}

// ParseCategory parses a category string. Matching is exact and case-sensitive.
func ParseCategory(s string) (Category, error) {
	c := Category(s)
	switch c {
	case CatRevenue, CatCOGS, CatSalesMarketing, CatGeneralAdmin, CatResearchDev,
		CatInterestExpense, CatOtherIncome, CatAsset, CatLiability, CatEquity:
		return c, nil
	}
	return "", fmt.Errorf("unknown category: %q", s)
}

func (c Category) String() string { return string(c) }

// Bucket identifies the statement line a category feeds.
type Bucket int

const (
	BucketRevenue Bucket = iota
	BucketCOGS
	BucketOperating
	BucketInterestExpense
	BucketOtherIncome
	BucketAsset
	BucketLiability
	BucketEquity
)

func (b Bucket) String() string {
	switch b {
	case BucketRevenue:
		return "revenue"
	case BucketCOGS:
		return "cogs"
	case BucketOperating:
		return "operating"
	case BucketInterestExpense:
		return "interest-expense"
	case BucketOtherIncome:
		return "other-income"
	case BucketAsset:
		return "asset"
	case BucketLiability:
		return "liability"
	case BucketEquity:
		return "equity"
	default:
		return "unknown"
	}
}

// Taxonomy maps categories to statement buckets. The statement builders take
// it as an argument instead of hardcoding category sets, so the mapping is
// defined once and can be adjusted in one place.
type Taxonomy map[Category]Bucket

// DefaultTaxonomy returns the standard mapping of categories to statement buckets.
func DefaultTaxonomy() Taxonomy {
	return Taxonomy{
		CatRevenue:         BucketRevenue,
		CatCOGS:            BucketCOGS,
		CatSalesMarketing:  BucketOperating,
		CatGeneralAdmin:    BucketOperating,
		CatResearchDev:     BucketOperating,
		CatInterestExpense: BucketInterestExpense,
		CatOtherIncome:     BucketOtherIncome,
		CatAsset:           BucketAsset,
		CatLiability:       BucketLiability,
		CatEquity:          BucketEquity,
	}
}

// Categories returns the categories mapped to the given bucket, in taxonomy order.
func (t Taxonomy) Categories(b Bucket) []Category {
	var cats []Category
	for _, c := range Categories() {
		if t[c] == b {
			if _, ok := t[c]; ok {
				cats = append(cats, c)
			}
		}
	}
	return cats
}

// Validate checks that every known category is mapped to a bucket, and that
// no unknown category sneaked into the mapping.
func (t Taxonomy) Validate() error {
	for _, c := range Categories() {
		if _, ok := t[c]; !ok {
			return fmt.Errorf("taxonomy does not map category %q", c)
		}
	}
	for c := range t {
		if _, err := ParseCategory(string(c)); err != nil {
			return fmt.Errorf("taxonomy maps unknown category %q", c)
		}
	}
	return nil
}
