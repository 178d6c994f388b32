package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/verumrexo/tip-harmony/internal/dto"
	"github.com/verumrexo/tip-harmony/internal/model"
	"github.com/verumrexo/tip-harmony/internal/repository"
	"github.com/verumrexo/tip-harmony/internal/worker"
)

type DrinkOrderService interface {
	Create(ctx context.Context, req dto.CreateDrinkOrderRequest) (*dto.DrinkOrderResponse, error)
	MonthlyReport(ctx context.Context, month, year int) (*dto.DrinkReportResponse, error)
	SendReport(ctx context.Context, month, year int, toEmail string) error
}

type drinkOrderService struct {
	repo        repository.DrinkOrderRepository
	policy      StackingPolicy
	dispatcher  *worker.Dispatcher // nil disables async delivery (unit test mode)
	reportEmail string
}

func NewDrinkOrderService(
	repo repository.DrinkOrderRepository,
	policy StackingPolicy,
	dispatcher *worker.Dispatcher,
	reportEmail string,
) DrinkOrderService {
	return &drinkOrderService{
		repo:        repo,
		policy:      policy,
		dispatcher:  dispatcher,
		reportEmail: reportEmail,
	}
}

// Create persists one write-off submission. Zero-quantity rows are dropped
// before serialization; an order with nothing left is rejected.
func (s *drinkOrderService) Create(ctx context.Context, req dto.CreateDrinkOrderRequest) (*dto.DrinkOrderResponse, error) {
	items := make([]model.DrinkOrderItem, 0, len(req.Items))
	for _, it := range req.Items {
		if it.Quantity < 1 {
			continue
		}
		items = append(items, model.DrinkOrderItem{
			Name:     it.Name,
			Category: it.Category,
			Quantity: it.Quantity,
		})
	}
	if len(items) == 0 {
		return nil, errors.New("order has no items with a positive quantity")
	}

	payload, err := json.Marshal(items)
	if err != nil {
		return nil, err
	}
	order := &model.DrinkOrder{Items: string(payload)}
	if err := s.repo.Create(ctx, order); err != nil {
		return nil, err
	}

	return &dto.DrinkOrderResponse{
		ID:        order.ID.String(),
		ItemCount: len(items),
		CreatedAt: order.CreatedAt.Format("2006-01-02T15:04:05Z"),
	}, nil
}

// MonthlyReport aggregates one calendar month of orders. Month and year
// default to the current month when zero. An empty month yields zero
// totals and an item-less report, not an error.
func (s *drinkOrderService) MonthlyReport(ctx context.Context, month, year int) (*dto.DrinkReportResponse, error) {
	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}

	orders, err := s.repo.ListByMonth(ctx, month, year)
	if err != nil {
		return nil, err
	}

	items := ProcessOrders(orders, s.policy)
	return &dto.DrinkReportResponse{
		Month:       month,
		Year:        year,
		TotalOrders: len(orders),
		Items:       items,
		Report:      FormatReport(items, len(orders), month, year),
	}, nil
}

// SendReport queues the monthly report for email delivery. The recipient
// falls back to the configured report address.
func (s *drinkOrderService) SendReport(ctx context.Context, month, year int, toEmail string) error {
	if s.dispatcher == nil {
		return errors.New("report delivery is not configured")
	}
	if toEmail == "" {
		toEmail = s.reportEmail
	}
	if toEmail == "" {
		return errors.New("no recipient configured for the report")
	}

	now := time.Now()
	if month == 0 {
		month = int(now.Month())
	}
	if year == 0 {
		year = now.Year()
	}
	return s.dispatcher.EnqueueReport(ctx, worker.ReportJobPayload{
		Month:   month,
		Year:    year,
		ToEmail: toEmail,
	})
}
