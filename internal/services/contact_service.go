package services

import "github.com/iam-david1/shophub/internal/repos"

type ContactService struct {
	Messages *repos.ContactRepo
}

func NewContactService(messages *repos.ContactRepo) *ContactService {
	return &ContactService{Messages: messages}
}

func (s *ContactService) Submit(name, email, message string) (int64, error) {
	return s.Messages.Insert(name, email, message)
}
