package services

import (
	"github.com/google/uuid"

	"github.com/iam-david1/shophub/internal/repos"
)

type HomecareService struct {
	Care *repos.HomecareRepo
}

func NewHomecareService(care *repos.HomecareRepo) *HomecareService {
	return &HomecareService{Care: care}
}

type HomecareServiceView struct {
	repos.HomecareService
	Features []string `json:"features"`
}

type CaregiverView struct {
	repos.Caregiver
	Certifications []string `json:"certifications"`
}

type HomecareStatsView struct {
	repos.HomecareStats
	FamiliesServed  int  `json:"familiesServed"`
	YearsExperience int  `json:"yearsExperience"`
	Available247    bool `json:"available24_7"`
	LicensedInsured bool `json:"licensedInsured"`
}

// Feature is a static selling point shown on the homecare landing page.
type Feature struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

func (s *HomecareService) Services() ([]HomecareServiceView, error) {
	rows, err := s.Care.Services()
	if err != nil {
		return nil, err
	}
	out := make([]HomecareServiceView, 0, len(rows))
	for _, r := range rows {
		out = append(out, HomecareServiceView{HomecareService: r, Features: splitCSV(r.Features)})
	}
	return out, nil
}

func (s *HomecareService) Service(id int64) (HomecareServiceView, error) {
	r, err := s.Care.Service(id)
	if err != nil {
		return HomecareServiceView{}, err
	}
	return HomecareServiceView{HomecareService: r, Features: splitCSV(r.Features)}, nil
}

func (s *HomecareService) Caregivers() ([]CaregiverView, error) {
	rows, err := s.Care.Caregivers()
	if err != nil {
		return nil, err
	}
	out := make([]CaregiverView, 0, len(rows))
	for _, r := range rows {
		out = append(out, CaregiverView{Caregiver: r, Certifications: splitCSV(r.Certifications)})
	}
	return out, nil
}

func (s *HomecareService) Caregiver(id int64) (CaregiverView, error) {
	r, err := s.Care.Caregiver(id)
	if err != nil {
		return CaregiverView{}, err
	}
	return CaregiverView{Caregiver: r, Certifications: splitCSV(r.Certifications)}, nil
}

func (s *HomecareService) Testimonials() ([]repos.Testimonial, error) {
	return s.Care.Testimonials()
}

func (s *HomecareService) SubmitTestimonial(name string, relation *string, rating int, comment string, image *string) (int64, error) {
	return s.Care.InsertTestimonial(name, relation, rating, comment, image)
}

func (s *HomecareService) RequestConsultation(c repos.NewConsultation) (int64, string, error) {
	c.Reference = uuid.NewString()
	id, err := s.Care.InsertConsultation(c)
	if err != nil {
		return 0, "", err
	}
	return id, c.Reference, nil
}

func (s *HomecareService) Consultation(id int64) (repos.ConsultationRow, error) {
	return s.Care.Consultation(id)
}

func (s *HomecareService) Stats() (HomecareStatsView, error) {
	stats, err := s.Care.Stats()
	if err != nil {
		return HomecareStatsView{}, err
	}
	return HomecareStatsView{
		HomecareStats:   stats,
		FamiliesServed:  1500,
		YearsExperience: 15,
		Available247:    true,
		LicensedInsured: true,
	}, nil
}

// Features returns the static trust badges for the landing page.
func (s *HomecareService) Features() []Feature {
	return []Feature{
		{ID: 1, Title: "Licensed & Insured", Description: "Fully licensed, bonded, and insured for your complete peace of mind.", Icon: "shield-check"},
		{ID: 2, Title: "24/7 Support", Description: "Round-the-clock availability for emergencies and urgent care needs.", Icon: "clock"},
		{ID: 3, Title: "HIPAA Compliant", Description: "Your privacy and medical data are protected with strict compliance.", Icon: "lock"},
		{ID: 4, Title: "Customized Care Plans", Description: "Tailored services designed to meet your unique individual needs.", Icon: "clipboard"},
		{ID: 5, Title: "Background Checked", Description: "All caregivers undergo thorough background checks and verification.", Icon: "user-check"},
		{ID: 6, Title: "Flexible Scheduling", Description: "From a few hours to 24/7 care, we adapt to your schedule.", Icon: "calendar"},
	}
}
