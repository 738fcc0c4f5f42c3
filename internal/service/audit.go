package service

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"widget-admin-backend/internal/database/models"
	"widget-admin-backend/internal/logger"
	"widget-admin-backend/internal/repository"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"
)

// MaxAuditExportRows caps a single XLSX export
const MaxAuditExportRows = 10000

const auditExportBatch = 1000

// AuditService records and queries audit log entries
type AuditService struct {
	repo repository.AuditLogRepositoryInterface
	now  func() time.Time
}

// NewAuditService creates a new audit service
func NewAuditService(repo repository.AuditLogRepositoryInterface) *AuditService {
	return &AuditService{repo: repo, now: time.Now}
}

// AuditQuery filters audit log listings
type AuditQuery struct {
	OrganizationID *uuid.UUID
	ActorID        *uuid.UUID
	Action         string
	ResourceType   string
	From           *time.Time
	To             *time.Time
}

// AuditLogResponse represents one audit entry
type AuditLogResponse struct {
	ID             uuid.UUID       `json:"id"`
	OrganizationID *uuid.UUID      `json:"organization_id,omitempty"`
	ActorID        *uuid.UUID      `json:"actor_id,omitempty"`
	ActorEmail     string          `json:"actor_email"`
	Action         string          `json:"action"`
	ResourceType   string          `json:"resource_type"`
	ResourceID     string          `json:"resource_id"`
	Metadata       json.RawMessage `json:"metadata,omitempty"`
	IPAddress      string          `json:"ip_address"`
	UserAgent      string          `json:"user_agent"`
	CreatedAt      string          `json:"created_at"`
}

// AuditLogListResponse represents a paginated list of audit entries
type AuditLogListResponse struct {
	Entries  []AuditLogResponse `json:"entries"`
	Total    int64              `json:"total"`
	Page     int                `json:"page"`
	PageSize int                `json:"page_size"`
}

// Record appends an audit entry. Storage failures are logged and swallowed.
func (s *AuditService) Record(actor Actor, orgID *uuid.UUID, action, resourceType, resourceID string, metadata interface{}) {
	entry := &models.AuditLog{
		OrganizationID: orgID,
		ActorEmail:     actor.Email,
		Action:         action,
		ResourceType:   resourceType,
		ResourceID:     resourceID,
		IPAddress:      actor.IP,
		UserAgent:      actor.UserAgent,
		CreatedAt:      s.now().UTC(),
	}
	if actor.UserID != uuid.Nil {
		id := actor.UserID
		entry.ActorID = &id
	}
	if metadata != nil {
		raw, err := json.Marshal(metadata)
		if err == nil {
			entry.Metadata = raw
		}
	}

	if err := s.repo.Create(entry); err != nil {
		logger.Named("audit").WithError(err).WithFields(map[string]interface{}{
			"action":      action,
			"resource_id": resourceID,
			"actor":       actor.Email,
		}).Error("failed to record audit entry")
	}
}

// List returns audit entries newest first
func (s *AuditService) List(query *AuditQuery, page, pageSize int) (*AuditLogListResponse, error) {
	page, pageSize, offset := paginate(page, pageSize)

	entries, total, err := s.repo.List(query.filter(), pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list audit log: %w", err)
	}

	out := make([]AuditLogResponse, len(entries))
	for i := range entries {
		out[i] = auditToResponse(&entries[i])
	}
	return &AuditLogListResponse{Entries: out, Total: total, Page: page, PageSize: pageSize}, nil
}

// Export writes the filtered entries as an XLSX workbook and returns the row count
func (s *AuditService) Export(query *AuditQuery, w io.Writer) (int, error) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Audit log"
	if err := f.SetSheetName("Sheet1", sheet); err != nil {
		return 0, err
	}

	header := []interface{}{"Time", "Organization", "Actor", "Action", "Resource type", "Resource ID", "IP address", "Metadata"}
	if err := f.SetSheetRow(sheet, "A1", &header); err != nil {
		return 0, err
	}

	filter := query.filter()
	rows := 0
	for rows < MaxAuditExportRows {
		limit := auditExportBatch
		if remaining := MaxAuditExportRows - rows; remaining < limit {
			limit = remaining
		}
		entries, _, err := s.repo.List(filter, limit, rows)
		if err != nil {
			return rows, fmt.Errorf("failed to read audit log: %w", err)
		}
		for i := range entries {
			e := &entries[i]
			org := ""
			if e.OrganizationID != nil {
				org = e.OrganizationID.String()
			}
			row := []interface{}{
				e.CreatedAt.UTC().Format(timeFormat), org, e.ActorEmail, e.Action,
				e.ResourceType, e.ResourceID, e.IPAddress, string(e.Metadata),
			}
			cell, err := excelize.CoordinatesToCellName(1, rows+i+2)
			if err != nil {
				return rows, err
			}
			if err := f.SetSheetRow(sheet, cell, &row); err != nil {
				return rows, err
			}
		}
		rows += len(entries)
		if len(entries) < limit {
			break
		}
	}

	if err := f.SetColWidth(sheet, "A", "H", 22); err != nil {
		return rows, err
	}
	if _, err := f.WriteTo(w); err != nil {
		return rows, fmt.Errorf("failed to write workbook: %w", err)
	}
	return rows, nil
}

func (q *AuditQuery) filter() repository.AuditLogFilter {
	if q == nil {
		return repository.AuditLogFilter{}
	}
	return repository.AuditLogFilter{
		OrganizationID: q.OrganizationID,
		ActorID:        q.ActorID,
		Action:         q.Action,
		ResourceType:   q.ResourceType,
		From:           q.From,
		To:             q.To,
	}
}

func auditToResponse(e *models.AuditLog) AuditLogResponse {
	return AuditLogResponse{
		ID:             e.ID,
		OrganizationID: e.OrganizationID,
		ActorID:        e.ActorID,
		ActorEmail:     e.ActorEmail,
		Action:         e.Action,
		ResourceType:   e.ResourceType,
		ResourceID:     e.ResourceID,
		Metadata:       e.Metadata,
		IPAddress:      e.IPAddress,
		UserAgent:      e.UserAgent,
		CreatedAt:      formatTime(e.CreatedAt),
	}
}
