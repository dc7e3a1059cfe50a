package services

import (
	"strings"

	"github.com/google/uuid"

	"github.com/iam-david1/shophub/internal/repos"
)

type SalonService struct {
	Salon *repos.SalonRepo
}

func NewSalonService(salon *repos.SalonRepo) *SalonService {
	return &SalonService{Salon: salon}
}

// TeamMemberView exposes the stored specialties CSV as an array.
type TeamMemberView struct {
	repos.TeamMember
	Specialties []string `json:"specialties"`
}

// SalonStatsView adds the static homepage counters to the live counts.
type SalonStatsView struct {
	repos.SalonStats
	HappyClients    int `json:"happyClients"`
	YearsExperience int `json:"yearsExperience"`
}

func splitCSV(s string) []string {
	if s == "" {
		return []string{}
	}
	return strings.Split(s, ",")
}

func (s *SalonService) Services() ([]repos.SalonService, error) { return s.Salon.Services() }

func (s *SalonService) Service(id int64) (repos.SalonService, error) { return s.Salon.Service(id) }

func (s *SalonService) Team() ([]TeamMemberView, error) {
	members, err := s.Salon.Team()
	if err != nil {
		return nil, err
	}
	out := make([]TeamMemberView, 0, len(members))
	for _, m := range members {
		out = append(out, TeamMemberView{TeamMember: m, Specialties: splitCSV(m.Specialties)})
	}
	return out, nil
}

func (s *SalonService) TeamMember(id int64) (TeamMemberView, error) {
	m, err := s.Salon.TeamMember(id)
	if err != nil {
		return TeamMemberView{}, err
	}
	return TeamMemberView{TeamMember: m, Specialties: splitCSV(m.Specialties)}, nil
}

func (s *SalonService) Gallery(category string) ([]repos.GalleryItem, error) {
	return s.Salon.Gallery(category)
}

func (s *SalonService) Reviews() ([]repos.SalonReview, error) { return s.Salon.Reviews() }

func (s *SalonService) SubmitReview(name string, rating int, comment, image *string) (int64, error) {
	return s.Salon.InsertReview(name, rating, comment, image)
}

// Book stores a booking request and hands back its id plus a public
// reference code for the confirmation flow.
func (s *SalonService) Book(b repos.NewBooking) (int64, string, error) {
	b.Reference = uuid.NewString()
	id, err := s.Salon.InsertBooking(b)
	if err != nil {
		return 0, "", err
	}
	return id, b.Reference, nil
}

func (s *SalonService) Booking(id int64) (repos.BookingRow, error) { return s.Salon.Booking(id) }

func (s *SalonService) Stats() (SalonStatsView, error) {
	stats, err := s.Salon.Stats()
	if err != nil {
		return SalonStatsView{}, err
	}
	// Static counters for the demo homepage
	return SalonStatsView{SalonStats: stats, HappyClients: 2500, YearsExperience: 15}, nil
}
