package loantype

import "time"

type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

func ValidStatus(s Status) bool { return s == StatusActive || s == StatusInactive }

type Category string

const (
	CategoryPersonal    Category = "personal"
	CategoryHome        Category = "home"
	CategoryVehicle     Category = "vehicle"
	CategoryBusiness    Category = "business"
	CategoryEducation   Category = "education"
	CategoryAgriculture Category = "agriculture"
	CategoryGold        Category = "gold"
	CategoryOther       Category = "other"
)

type Subcategory string

// subcategoriesByCategory pins each subcategory to its parent category.
var subcategoriesByCategory = map[Category][]Subcategory{
	CategoryPersonal:    {"personal", "instant-personal", "short-term", "emergency", "wedding", "travel", "medical"},
	CategoryHome:        {"home", "home-construction", "home-renovation", "land-plot", "loan-against-property"},
	CategoryVehicle:     {"car-new", "car-used", "two-wheeler", "commercial-vehicle"},
	CategoryBusiness:    {"business", "startup", "msme-sme", "working-capital", "machinery", "invoice-bill-discounting", "merchant-cash-advance"},
	CategoryEducation:   {"education-india", "education-abroad", "skill-development"},
	CategoryAgriculture: {"crop", "equipment-tractor", "irrigation", "kisan-credit-card"},
	CategoryGold:        {"gold", "fixed-deposit", "loan-against-shares-mutual-funds"},
	CategoryOther:       {},
}

func ValidCategory(c Category) bool {
	_, ok := subcategoriesByCategory[c]
	return ok
}

// ValidSubcategory reports whether sub belongs to cat. The "other" category
// accepts any non-empty subcategory.
func ValidSubcategory(cat Category, sub Subcategory) bool {
	if cat == CategoryOther {
		return sub != ""
	}
	for _, s := range subcategoriesByCategory[cat] {
		if s == sub {
			return true
		}
	}
	return false
}

type InterestRate struct {
	Min float64 `gorm:"column:interest_rate_min;type:decimal(6,2)" json:"min"`
	Max float64 `gorm:"column:interest_rate_max;type:decimal(6,2)" json:"max"`
}

type Tenure struct {
	MinMonths int `gorm:"column:tenure_min_months" json:"minMonths"`
	MaxMonths int `gorm:"column:tenure_max_months" json:"maxMonths"`
}

type LoanType struct {
	ID                  uint64       `gorm:"primaryKey;column:id" json:"-"`
	LoanTypeID          string       `gorm:"size:32;uniqueIndex:ux_loan_types_loan_type_id" json:"id"`
	LoanName            string       `gorm:"size:255" json:"loanName"`
	LoanCategory        Category     `gorm:"size:32;index:idx_loan_types_category" json:"loanCategory"`
	LoanSubcategory     Subcategory  `gorm:"size:64;index:idx_loan_types_subcategory" json:"loanSubcategory"`
	MinAmount           float64      `gorm:"type:decimal(18,2)" json:"minAmount"`
	MaxAmount           float64      `gorm:"type:decimal(18,2)" json:"maxAmount"`
	InterestRate        InterestRate `gorm:"embedded" json:"interestRate"`
	Tenure              Tenure       `gorm:"embedded" json:"tenure"`
	ProcessingFee       string       `gorm:"size:255" json:"processingFee,omitempty"`
	EligibilityCriteria string       `gorm:"type:text" json:"eligibilityCriteria,omitempty"`
	RequiredDocuments   []string     `gorm:"serializer:json;type:json" json:"requiredDocuments"`
	Status              Status       `gorm:"type:enum('active','inactive');default:'active';index:idx_loan_types_status" json:"status"`
	CreatedBy           string       `gorm:"size:32;index:idx_loan_types_created_by" json:"createdBy"`
	CreatedAt           time.Time    `gorm:"autoCreateTime" json:"createdAt"`
	UpdatedAt           time.Time    `gorm:"autoUpdateTime" json:"updatedAt"`
}

func (LoanType) TableName() string { return "loan_types" }
