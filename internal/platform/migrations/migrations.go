package migrations

import (
	"time"

	"gorm.io/gorm"
)

// Run applies the schema for the bounded contexts. Intended to replace
// adapter-level automigrate.
func Run(db *gorm.DB) error {
	if db == nil {
		return nil
	}
	return db.AutoMigrate(
		&clientRecord{},
		&petRecord{},
		&serviceRecord{},
		&productRecord{},
		&appointmentRecord{},
	)
}

// Client schema mirrors the clients Postgres adapter.
type clientRecord struct {
	ID       string `gorm:"primaryKey;column:id;size:64"`
	Name     string `gorm:"column:name;index"`
	Initials string `gorm:"column:initials;size:8"`
	Phone    string `gorm:"column:phone;size:32"`
	Email    string `gorm:"column:email"`
	TaxID    string `gorm:"column:tax_id;size:32"`
	ImageURL string `gorm:"column:image_url"`
}

func (clientRecord) TableName() string { return "clients" }

// Pet schema mirrors the clients Postgres adapter.
type petRecord struct {
	ID       string `gorm:"primaryKey;column:id;size:64"`
	ClientID string `gorm:"column:client_id;size:64;not null;index"`
	Name     string `gorm:"column:name;index"`
	Breed    string `gorm:"column:breed"`
	Age      string `gorm:"column:age;size:32"`
	Weight   string `gorm:"column:weight;size:32"`
	Gender   string `gorm:"column:gender;size:16"`
	ImageURL string `gorm:"column:image_url"`
}

func (petRecord) TableName() string { return "pets" }

// Service schema mirrors the catalog Postgres adapter.
type serviceRecord struct {
	ID          string  `gorm:"primaryKey;column:id;size:64"`
	Name        string  `gorm:"column:name;index"`
	Category    string  `gorm:"column:category"`
	Description string  `gorm:"column:description"`
	Duration    string  `gorm:"column:duration;size:32"`
	Price       float64 `gorm:"column:price"`
	ImageURL    string  `gorm:"column:image_url"`
}

func (serviceRecord) TableName() string { return "services" }

// Product schema mirrors the catalog Postgres adapter.
type productRecord struct {
	ID          string   `gorm:"primaryKey;column:id;size:64"`
	Name        string   `gorm:"column:name;index"`
	Category    string   `gorm:"column:category"`
	Price       float64  `gorm:"column:price"`
	OldPrice    *float64 `gorm:"column:old_price"`
	DiscountTag string   `gorm:"column:discount_tag;size:32"`
	Rating      float64  `gorm:"column:rating"`
	Reviews     int      `gorm:"column:reviews"`
	Tag         string   `gorm:"column:tag;size:32"`
	ImageURL    string   `gorm:"column:image_url"`
}

func (productRecord) TableName() string { return "products" }

// Appointment schema mirrors the scheduling Postgres adapter.
type appointmentRecord struct {
	ID                   string    `gorm:"primaryKey;column:id;size:64"`
	PetID                string    `gorm:"column:pet_id;size:64;not null;index:idx_appointments_slot"`
	ServiceID            string    `gorm:"column:service_id;size:64;not null;index"`
	Date                 string    `gorm:"column:date;size:10;index:idx_appointments_slot"`
	TimeRange            string    `gorm:"column:time_range;size:16;index:idx_appointments_slot"`
	Professional         string    `gorm:"column:professional"`
	ProfessionalInitials string    `gorm:"column:professional_initials;size:8"`
	Status               string    `gorm:"column:status;size:16;index"`
	CreatedAt            time.Time `gorm:"column:created_at;index"`
	UpdatedAt            time.Time `gorm:"column:updated_at"`
}

func (appointmentRecord) TableName() string { return "appointments" }
