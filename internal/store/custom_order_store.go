package store

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/jyush98/jason-co-ecom-sub004/internal/auth"
	"github.com/jyush98/jason-co-ecom-sub004/internal/dto"
	"github.com/jyush98/jason-co-ecom-sub004/internal/entity"
	"github.com/jyush98/jason-co-ecom-sub004/internal/events"
	"github.com/jyush98/jason-co-ecom-sub004/internal/pkg/logger"
	"github.com/jyush98/jason-co-ecom-sub004/pkg/api"
)

// CustomOrderStore mirrors the bespoke-jewelry inquiry pipeline: drafts,
// submitted orders, and design consultations.
type CustomOrderStore struct {
	state  collection[entity.CustomOrder]
	api    *api.Client
	tokens auth.TokenSource
	events events.Publisher
	logger logger.ILogger

	total int
}

func NewCustomOrderStore(client *api.Client, tokens auth.TokenSource, publisher events.Publisher, log logger.ILogger) *CustomOrderStore {
	return &CustomOrderStore{
		api:    client,
		tokens: tokens,
		events: publisher,
		logger: log,
	}
}

// FetchAll reads one page of custom orders. The endpoint wraps the page in
// an {items,total} envelope rather than a bare array.
func (s *CustomOrderStore) FetchAll(ctx context.Context, filter dto.CustomOrderFilter) error {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		s.state.reject(errorMessage(err))
		return err
	}

	s.state.begin()

	params := url.Values{}
	if filter.Status != "" {
		params.Add("status", filter.Status)
	}
	if filter.Page > 0 {
		params.Add("page", strconv.Itoa(filter.Page))
	}
	if filter.PageSize > 0 {
		params.Add("page_size", strconv.Itoa(filter.PageSize))
	}
	path := "/api/custom-orders"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}

	var resp dto.CustomOrderListResponse
	if err := s.api.Get(ctx, path, token, &resp); err != nil {
		s.state.fail(errorMessage(err))
		s.logger.Error("CUSTOM_ORDERS", "Failed to fetch custom orders", map[string]interface{}{"error": err.Error()})
		return err
	}

	s.state.mu.Lock()
	s.total = resp.Total
	s.state.mu.Unlock()

	s.state.settleWith(resp.Items)
	return nil
}

func (s *CustomOrderStore) Get(ctx context.Context, orderId int) (entity.CustomOrder, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return entity.CustomOrder{}, err
	}

	var order entity.CustomOrder
	if err := s.api.Get(ctx, "/api/custom-orders/"+strconv.Itoa(orderId), token, &order); err != nil {
		return entity.CustomOrder{}, fmt.Errorf("fetch custom order %d: %w", orderId, err)
	}
	return order, nil
}

// Submit sends a completed inquiry. The optimistic record shows up at the
// head of the list immediately; a failed submit drops it again.
func (s *CustomOrderStore) Submit(ctx context.Context, input dto.CustomOrderCreate) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	placeholder := entity.CustomOrder{
		Id:                 entity.PlaceholderId,
		Name:               input.Name,
		Email:              input.Email,
		Phone:              input.Phone,
		ProjectType:        input.ProjectType,
		StylePreference:    input.StylePreference,
		BudgetRange:        input.BudgetRange,
		ProjectDescription: input.ProjectDescription,
		Status:             entity.CustomOrderSubmitted,
	}

	s.state.begin()
	s.state.mutate(func(orders []entity.CustomOrder) []entity.CustomOrder {
		return append([]entity.CustomOrder{placeholder}, orders...)
	})

	var created entity.CustomOrder
	if err := s.api.Post(ctx, "/api/custom-orders/submit", token, input, &created); err != nil {
		s.state.mutate(func(orders []entity.CustomOrder) []entity.CustomOrder {
			kept := orders[:0]
			for _, order := range orders {
				if order.Id != entity.PlaceholderId {
					kept = append(kept, order)
				}
			}
			return kept
		})
		s.state.fail(errorMessage(err))
		s.logger.Error("CUSTOM_ORDERS", "Failed to submit custom order", map[string]interface{}{
			"email": input.Email,
			"error": err.Error(),
		})
		return failed(err)
	}

	// Swap the placeholder for the confirmed record in place.
	s.state.mutate(func(orders []entity.CustomOrder) []entity.CustomOrder {
		for i := range orders {
			if orders[i].Id == entity.PlaceholderId {
				orders[i] = created
			}
		}
		return orders
	})
	s.state.settle()
	s.events.PublishCustomOrderSubmitted(ctx, created.Id, created.Email)
	return succeeded("Custom order submitted")
}

// SaveDraft persists a partially filled inquiry form server-side so the
// customer can resume from another device.
func (s *CustomOrderStore) SaveDraft(ctx context.Context, input dto.CustomOrderCreate) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	var draft entity.CustomOrder
	if err := s.api.Post(ctx, "/api/custom-orders/draft", token, input, &draft); err != nil {
		s.logger.Error("CUSTOM_ORDERS", "Failed to save draft", map[string]interface{}{"error": err.Error()})
		return failed(err)
	}
	return succeeded("Draft saved")
}

// Draft fetches the resumable draft for an email, if one exists. A 404
// means no draft; that is a clean empty-form state, not an error.
func (s *CustomOrderStore) Draft(ctx context.Context, email string) (entity.CustomOrder, bool, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return entity.CustomOrder{}, false, err
	}

	var draft entity.CustomOrder
	if err := s.api.Get(ctx, "/api/custom-orders/draft/"+url.PathEscape(email), token, &draft); err != nil {
		if api.IsNotFound(err) {
			return entity.CustomOrder{}, false, nil
		}
		return entity.CustomOrder{}, false, fmt.Errorf("fetch draft: %w", err)
	}
	return draft, true, nil
}

// Update patches an order, optimistically applying status/description
// changes to the mirrored record and rolling back on failure.
func (s *CustomOrderStore) Update(ctx context.Context, orderId int, input dto.CustomOrderCreate) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	snap := s.state.snapshot()
	s.state.begin()
	s.state.mutate(func(orders []entity.CustomOrder) []entity.CustomOrder {
		for i := range orders {
			if orders[i].Id != orderId {
				continue
			}
			orders[i].Name = input.Name
			orders[i].Email = input.Email
			orders[i].Phone = input.Phone
			orders[i].ProjectType = input.ProjectType
			orders[i].StylePreference = input.StylePreference
			orders[i].BudgetRange = input.BudgetRange
			orders[i].ProjectDescription = input.ProjectDescription
		}
		return orders
	})

	var updated entity.CustomOrder
	if err := s.api.Put(ctx, "/api/custom-orders/"+strconv.Itoa(orderId), token, input, &updated); err != nil {
		s.state.restore(snap)
		s.state.fail(errorMessage(err))
		s.logger.Error("CUSTOM_ORDERS", "Failed to update custom order", map[string]interface{}{
			"order_id": orderId,
			"error":    err.Error(),
		})
		return failed(err)
	}

	s.state.settle()
	return succeeded("Custom order updated")
}

func (s *CustomOrderStore) ScheduleConsultation(ctx context.Context, req dto.ConsultationRequest) ActionResult {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return failed(err)
	}

	var created entity.DesignConsultation
	if err := s.api.Post(ctx, "/api/custom-orders/consultations", token, req, &created); err != nil {
		s.logger.Error("CUSTOM_ORDERS", "Failed to schedule consultation", map[string]interface{}{"error": err.Error()})
		return failed(err)
	}
	return succeeded("Consultation scheduled")
}

func (s *CustomOrderStore) Consultations(ctx context.Context) ([]entity.DesignConsultation, error) {
	token, err := s.tokens.Token(ctx)
	if err != nil {
		return nil, err
	}

	var consultations []entity.DesignConsultation
	if err := s.api.Get(ctx, "/api/custom-orders/consultations", token, &consultations); err != nil {
		return nil, fmt.Errorf("fetch consultations: %w", err)
	}
	return consultations, nil
}

// Total is the server-reported count across all pages from the last fetch.
func (s *CustomOrderStore) Total() int {
	s.state.mu.Lock()
	defer s.state.mu.Unlock()
	return s.total
}

func (s *CustomOrderStore) Items() []entity.CustomOrder { return s.state.Items() }
func (s *CustomOrderStore) Len() int                    { return s.state.Len() }
func (s *CustomOrderStore) IsLoading() bool             { return s.state.IsLoading() }
func (s *CustomOrderStore) Phase() Phase                { return s.state.Phase() }
func (s *CustomOrderStore) LastError() string           { return s.state.LastError() }
func (s *CustomOrderStore) ClearError()                 { s.state.ClearError() }
