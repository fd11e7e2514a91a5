package smslogs

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/m04kA/barber-frontdesk/internal/domain"
	"github.com/m04kA/barber-frontdesk/internal/integrations/reservationapi"
	"github.com/m04kA/barber-frontdesk/internal/service/smslogs/models"
)

// Service журнал отправки SMS с кодами подтверждения
type Service struct {
	api    SmsLogAPI
	logger Logger
}

// NewService создает новый экземпляр сервиса
func NewService(api SmsLogAPI, logger Logger) *Service {
	return &Service{api: api, logger: logger}
}

// List журнал, новые записи первыми. С Grouped=true возвращается сводка по номерам
func (s *Service) List(ctx context.Context, sess *reservationapi.Session, req *models.ListSmsLogsRequest) (*models.SmsLogListResponse, error) {
	if req.Status != nil && !validStatus(domain.SmsStatus(*req.Status)) {
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, *req.Status)
	}

	logs, err := s.api.ListSmsLogs(ctx, sess)
	if err != nil {
		s.logger.Error("List: failed to list sms logs: %v", err)
		if errors.Is(err, reservationapi.ErrUnauthorized) {
			return nil, ErrUnauthorized
		}
		return nil, fmt.Errorf("%w: List - reservation api error: %v", ErrInternal, err)
	}

	filtered := Filter(logs, req.Status, req.Phone)
	resp := &models.SmsLogListResponse{Total: len(filtered)}
	if req.Grouped {
		groups := Group(filtered)
		resp.Groups = make([]models.SmsLogGroupResponse, len(groups))
		for i := range groups {
			resp.Groups[i] = models.FromDomainSmsLogGroup(&groups[i])
		}
	} else {
		resp.Logs = models.FromDomainSmsLogList(filtered)
	}

	s.logger.Info("List: %d of %d sms logs match", len(filtered), len(logs))
	return resp, nil
}

// Filter отбирает записи по статусу и подстроке номера и сортирует от новых к старым
func Filter(logs []domain.SmsLog, status *string, phone string) []domain.SmsLog {
	phone = strings.TrimSpace(phone)
	out := make([]domain.SmsLog, 0, len(logs))
	for _, l := range logs {
		if status != nil && string(l.Status) != *status {
			continue
		}
		if phone != "" && !strings.Contains(l.To, phone) {
			continue
		}
		out = append(out, l)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out
}

// Group сводка по номерам. Группы упорядочены по последней отправке, записи внутри от новых к старым
func Group(logs []domain.SmsLog) []domain.SmsLogGroup {
	index := make(map[string]int)
	groups := make([]domain.SmsLogGroup, 0)

	for _, l := range logs {
		i, ok := index[l.To]
		if !ok {
			i = len(groups)
			index[l.To] = i
			groups = append(groups, domain.SmsLogGroup{To: l.To})
		}
		g := &groups[i]
		g.Total++
		switch l.Status {
		case domain.SmsStatusOK:
			g.OK++
		case domain.SmsStatusError:
			g.Error++
		case domain.SmsStatusException:
			g.Exception++
		}
		if l.CreatedAt.After(g.Last) {
			g.Last = l.CreatedAt
		}
		g.Logs = append(g.Logs, l)
	}

	for i := range groups {
		logs := groups[i].Logs
		sort.SliceStable(logs, func(a, b int) bool { return logs[a].CreatedAt.After(logs[b].CreatedAt) })
	}
	sort.SliceStable(groups, func(i, j int) bool { return groups[i].Last.After(groups[j].Last) })
	return groups
}

func validStatus(s domain.SmsStatus) bool {
	switch s {
	case domain.SmsStatusOK, domain.SmsStatusError, domain.SmsStatusException:
		return true
	}
	return false
}
