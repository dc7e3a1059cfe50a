package domain

type Product struct {
	ID          int64   `db:"id" json:"id"`
	Name        string  `db:"name" json:"name"`
	Price       float64 `db:"price" json:"price"`
	Image       string  `db:"image" json:"image"`
	Description *string `db:"description" json:"description"`
	Stock       int     `db:"stock" json:"stock"`
	CreatedAt   string  `db:"created_at" json:"created_at"`
	UpdatedAt   string  `db:"updated_at" json:"updated_at"`
}

type Order struct {
	ID        int64   `db:"id" json:"id"`
	SessionID string  `db:"session_id" json:"session_id"`
	Total     float64 `db:"total" json:"total"`
	Status    string  `db:"status" json:"status"` // completed is the only state in this scope
	CreatedAt string  `db:"created_at" json:"created_at"`
}

type ContactMessage struct {
	ID        int64  `db:"id" json:"id"`
	Name      string `db:"name" json:"name"`
	Email     string `db:"email" json:"email"`
	Message   string `db:"message" json:"message"`
	CreatedAt string `db:"created_at" json:"created_at"`
}
