package repos

import "github.com/jmoiron/sqlx"

type ContactRepo struct{ db *sqlx.DB }

func NewContactRepo(db *sqlx.DB) *ContactRepo { return &ContactRepo{db: db} }

func (r *ContactRepo) Insert(name, email, message string) (int64, error) {
	res, err := r.db.Exec(`
		INSERT INTO contact_messages(name, email, message)
		VALUES(?, ?, ?)
	`, name, email, message)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}
