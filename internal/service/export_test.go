package service

import "time"

// Test hooks for pinning the clock.

func (s *OrganizationService) SetClock(now func() time.Time) { s.now = now }
func (s *InvitationService) SetClock(now func() time.Time)   { s.now = now }
func (s *BillingService) SetClock(now func() time.Time)      { s.now = now }
func (s *WebhookService) SetClock(now func() time.Time)      { s.now = now }
func (s *KnowledgeService) SetClock(now func() time.Time)    { s.now = now }
func (s *AuditService) SetClock(now func() time.Time)        { s.now = now }

// HashToken exposes the invitation token digest
var HashToken = hashToken
