package services

import (
	"github.com/andriawan/minibank-backend/internal/models"
	repo "github.com/andriawan/minibank-backend/internal/repository"
)

type AuditService struct{ r repo.AuditLogs }

func NewAuditService(r repo.AuditLogs) *AuditService { return &AuditService{r: r} }

func (s *AuditService) Recent(limit int) ([]models.AuditLog, error) { return s.r.Recent(limit) }
