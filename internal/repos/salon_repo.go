package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iam-david1/shophub/internal/domain"
)

type SalonRepo struct{ db *sqlx.DB }

func NewSalonRepo(db *sqlx.DB) *SalonRepo { return &SalonRepo{db: db} }

type SalonService struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Description string  `db:"description" json:"description"`
	Price       float64 `db:"price" json:"price"`
	Duration    int     `db:"duration" json:"duration"`
	Image       string  `db:"image" json:"image"`
	Category    string  `db:"category" json:"category"`
}

// TeamMember carries specialties as the stored CSV; the service layer splits
// it for responses.
type TeamMember struct {
	ID              int64  `db:"id" json:"id"`
	Name            string `db:"name" json:"name"`
	Role            string `db:"role" json:"role"`
	Bio             string `db:"bio" json:"bio"`
	Image           string `db:"image" json:"image"`
	Specialties     string `db:"specialties" json:"-"`
	ExperienceYears int    `db:"experience_years" json:"experience_years"`
}

type GalleryItem struct {
	ID       int64  `db:"id" json:"id"`
	Title    string `db:"title" json:"title"`
	Image    string `db:"image" json:"image"`
	Category string `db:"category" json:"category"`
}

type SalonReview struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Rating    int     `db:"rating" json:"rating"`
	Comment   *string `db:"comment" json:"comment"`
	Image     *string `db:"image" json:"image"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type BookingRow struct {
	ID          int64   `db:"id" json:"id"`
	Reference   string  `db:"reference" json:"reference"`
	Name        string  `db:"name" json:"name"`
	Email       string  `db:"email" json:"email"`
	Phone       string  `db:"phone" json:"phone"`
	ServiceID   *int64  `db:"service_id" json:"service_id"`
	StylistID   *int64  `db:"stylist_id" json:"stylist_id"`
	Date        string  `db:"date" json:"date"`
	Time        string  `db:"time" json:"time"`
	Notes       *string `db:"notes" json:"notes"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	ServiceName *string `db:"service_name" json:"service_name"`
	StylistName *string `db:"stylist_name" json:"stylist_name"`
}

type SalonStats struct {
	Services      int     `db:"services" json:"services"`
	Stylists      int     `db:"stylists" json:"stylists"`
	Reviews       int     `db:"reviews" json:"reviews"`
	AverageRating float64 `db:"average_rating" json:"averageRating"`
}

func (r *SalonRepo) Services() ([]SalonService, error) {
	out := []SalonService{}
	err := r.db.Select(&out, `
		SELECT id, name, COALESCE(description,'') AS description, price, duration,
		       COALESCE(image,'') AS image, COALESCE(category,'') AS category
		FROM salon_services ORDER BY id
	`)
	return out, err
}

func (r *SalonRepo) Service(id int64) (SalonService, error) {
	var s SalonService
	err := r.db.Get(&s, `
		SELECT id, name, COALESCE(description,'') AS description, price, duration,
		       COALESCE(image,'') AS image, COALESCE(category,'') AS category
		FROM salon_services WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return SalonService{}, domain.ErrNotFound
	}
	return s, err
}

func (r *SalonRepo) Team() ([]TeamMember, error) {
	out := []TeamMember{}
	err := r.db.Select(&out, `
		SELECT id, name, role, COALESCE(bio,'') AS bio, COALESCE(image,'') AS image,
		       COALESCE(specialties,'') AS specialties, experience_years
		FROM salon_team ORDER BY id
	`)
	return out, err
}

func (r *SalonRepo) TeamMember(id int64) (TeamMember, error) {
	var m TeamMember
	err := r.db.Get(&m, `
		SELECT id, name, role, COALESCE(bio,'') AS bio, COALESCE(image,'') AS image,
		       COALESCE(specialties,'') AS specialties, experience_years
		FROM salon_team WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return TeamMember{}, domain.ErrNotFound
	}
	return m, err
}

// Gallery optionally filters by category.
func (r *SalonRepo) Gallery(category string) ([]GalleryItem, error) {
	out := []GalleryItem{}
	q := `SELECT id, title, image, COALESCE(category,'') AS category FROM salon_gallery`
	args := []any{}
	if category != "" {
		q += ` WHERE category = ?`
		args = append(args, category)
	}
	q += ` ORDER BY id`
	err := r.db.Select(&out, q, args...)
	return out, err
}

func (r *SalonRepo) Reviews() ([]SalonReview, error) {
	out := []SalonReview{}
	err := r.db.Select(&out, `
		SELECT id, name, rating, comment, image, created_at
		FROM salon_reviews ORDER BY datetime(created_at) DESC, id DESC
	`)
	return out, err
}

func (r *SalonRepo) InsertReview(name string, rating int, comment, image *string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO salon_reviews(name, rating, comment, image)
		VALUES(?, ?, ?, ?)
	`, name, rating, comment, image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type NewBooking struct {
	Reference string
	Name      string
	Email     string
	Phone     string
	ServiceID *int64
	StylistID *int64
	Date      string
	Time      string
	Notes     *string
}

func (r *SalonRepo) InsertBooking(b NewBooking) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO salon_bookings(reference, name, email, phone, service_id, stylist_id, date, time, notes)
		VALUES(?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, b.Reference, b.Name, b.Email, b.Phone, b.ServiceID, b.StylistID, b.Date, b.Time, b.Notes)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *SalonRepo) Booking(id int64) (BookingRow, error) {
	var b BookingRow
	err := r.db.Get(&b, `
		SELECT b.id, b.reference, b.name, b.email, b.phone, b.service_id, b.stylist_id,
		       b.date, b.time, b.notes, b.created_at,
		       s.name AS service_name, t.name AS stylist_name
		FROM salon_bookings b
		LEFT JOIN salon_services s ON s.id = b.service_id
		LEFT JOIN salon_team t ON t.id = b.stylist_id
		WHERE b.id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return BookingRow{}, domain.ErrNotFound
	}
	return b, err
}

func (r *SalonRepo) Stats() (SalonStats, error) {
	var s SalonStats
	err := r.db.Get(&s, `
		SELECT
		  (SELECT COUNT(*) FROM salon_services) AS services,
		  (SELECT COUNT(*) FROM salon_team) AS stylists,
		  (SELECT COUNT(*) FROM salon_reviews) AS reviews,
		  (SELECT COALESCE(ROUND(AVG(rating),1), 5.0) FROM salon_reviews) AS average_rating
	`)
	return s, err
}
