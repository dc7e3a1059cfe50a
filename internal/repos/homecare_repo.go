package repos

import (
	"database/sql"
	"errors"

	"github.com/jmoiron/sqlx"

	"github.com/iam-david1/shophub/internal/domain"
)

type HomecareRepo struct{ db *sqlx.DB }

func NewHomecareRepo(db *sqlx.DB) *HomecareRepo { return &HomecareRepo{db: db} }

type HomecareService struct {
	ID          int64  `db:"id" json:"id"`
	Name        string `db:"name" json:"name"`
	Description string `db:"description" json:"description"`
	Features    string `db:"features" json:"-"`
	Image       string `db:"image" json:"image"`
	Icon        string `db:"icon" json:"icon"`
}

type Caregiver struct {
	ID              int64   `db:"id" json:"id"`
	Name            string  `db:"name" json:"name"`
	Role            string  `db:"role" json:"role"`
	Bio             string  `db:"bio" json:"bio"`
	Image           string  `db:"image" json:"image"`
	Certifications  string  `db:"certifications" json:"-"`
	ExperienceYears int     `db:"experience_years" json:"experience_years"`
	Rating          float64 `db:"rating" json:"rating"`
}

type Testimonial struct {
	ID        int64   `db:"id" json:"id"`
	Name      string  `db:"name" json:"name"`
	Relation  *string `db:"relation" json:"relation"`
	Rating    int     `db:"rating" json:"rating"`
	Comment   string  `db:"comment" json:"comment"`
	Image     *string `db:"image" json:"image"`
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type ConsultationRow struct {
	ID            int64   `db:"id" json:"id"`
	Reference     string  `db:"reference" json:"reference"`
	Name          string  `db:"name" json:"name"`
	Email         string  `db:"email" json:"email"`
	Phone         string  `db:"phone" json:"phone"`
	ServiceID     *int64  `db:"service_id" json:"service_id"`
	Message       *string `db:"message" json:"message"`
	PreferredDate *string `db:"preferred_date" json:"preferred_date"`
	CreatedAt     string  `db:"created_at" json:"created_at"`
	ServiceName   *string `db:"service_name" json:"service_name"`
}

type HomecareStats struct {
	Services      int     `db:"services" json:"services"`
	Caregivers    int     `db:"caregivers" json:"caregivers"`
	Testimonials  int     `db:"testimonials" json:"testimonials"`
	AverageRating float64 `db:"average_rating" json:"averageRating"`
}

func (r *HomecareRepo) Services() ([]HomecareService, error) {
	out := []HomecareService{}
	err := r.db.Select(&out, `
		SELECT id, name, COALESCE(description,'') AS description, COALESCE(features,'') AS features,
		       COALESCE(image,'') AS image, COALESCE(icon,'') AS icon
		FROM homecare_services ORDER BY id
	`)
	return out, err
}

func (r *HomecareRepo) Service(id int64) (HomecareService, error) {
	var s HomecareService
	err := r.db.Get(&s, `
		SELECT id, name, COALESCE(description,'') AS description, COALESCE(features,'') AS features,
		       COALESCE(image,'') AS image, COALESCE(icon,'') AS icon
		FROM homecare_services WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return HomecareService{}, domain.ErrNotFound
	}
	return s, err
}

func (r *HomecareRepo) Caregivers() ([]Caregiver, error) {
	out := []Caregiver{}
	err := r.db.Select(&out, `
		SELECT id, name, role, COALESCE(bio,'') AS bio, COALESCE(image,'') AS image,
		       COALESCE(certifications,'') AS certifications, experience_years, rating
		FROM homecare_caregivers
		ORDER BY rating DESC, experience_years DESC
	`)
	return out, err
}

func (r *HomecareRepo) Caregiver(id int64) (Caregiver, error) {
	var c Caregiver
	err := r.db.Get(&c, `
		SELECT id, name, role, COALESCE(bio,'') AS bio, COALESCE(image,'') AS image,
		       COALESCE(certifications,'') AS certifications, experience_years, rating
		FROM homecare_caregivers WHERE id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return Caregiver{}, domain.ErrNotFound
	}
	return c, err
}

func (r *HomecareRepo) Testimonials() ([]Testimonial, error) {
	out := []Testimonial{}
	err := r.db.Select(&out, `
		SELECT id, name, relation, rating, comment, image, created_at
		FROM homecare_testimonials ORDER BY datetime(created_at) DESC, id DESC
	`)
	return out, err
}

func (r *HomecareRepo) InsertTestimonial(name string, relation *string, rating int, comment string, image *string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO homecare_testimonials(name, relation, rating, comment, image)
		VALUES(?, ?, ?, ?, ?)
	`, name, relation, rating, comment, image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

type NewConsultation struct {
	Reference     string
	Name          string
	Email         string
	Phone         string
	ServiceID     *int64
	Message       *string
	PreferredDate *string
}

func (r *HomecareRepo) InsertConsultation(c NewConsultation) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO homecare_consultations(reference, name, email, phone, service_id, message, preferred_date)
		VALUES(?, ?, ?, ?, ?, ?, ?)
	`, c.Reference, c.Name, c.Email, c.Phone, c.ServiceID, c.Message, c.PreferredDate)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *HomecareRepo) Consultation(id int64) (ConsultationRow, error) {
	var c ConsultationRow
	err := r.db.Get(&c, `
		SELECT c.id, c.reference, c.name, c.email, c.phone, c.service_id, c.message,
		       c.preferred_date, c.created_at, s.name AS service_name
		FROM homecare_consultations c
		LEFT JOIN homecare_services s ON s.id = c.service_id
		WHERE c.id = ?
	`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return ConsultationRow{}, domain.ErrNotFound
	}
	return c, err
}

func (r *HomecareRepo) Stats() (HomecareStats, error) {
	var s HomecareStats
	err := r.db.Get(&s, `
		SELECT
		  (SELECT COUNT(*) FROM homecare_services) AS services,
		  (SELECT COUNT(*) FROM homecare_caregivers) AS caregivers,
		  (SELECT COUNT(*) FROM homecare_testimonials) AS testimonials,
		  (SELECT COALESCE(ROUND(AVG(rating),1), 5.0) FROM homecare_testimonials) AS average_rating
	`)
	return s, err
}
