package service

import (
	"context"
	"errors"
	"net/url"
	"sync"
	"time"

	"order-desk/internal/common/logger"
	"order-desk/internal/menu"
	"order-desk/internal/microservices/order/cache"
	dao "order-desk/internal/microservices/order/domain/dao"
	dto "order-desk/internal/microservices/order/domain/dto"
	"order-desk/internal/microservices/order/repository"
)

type OrderServiceInterface interface {
	// PlaceOrder turns a submitted order form into a stored order. ok is false
	// when the form carries no positive quantity; nothing is stored then.
	PlaceOrder(ctx context.Context, form url.Values) (order dao.Order, ok bool, err error)
	PendingOrders(ctx context.Context) ([]dto.OrderView, error)
	MarkDone(ctx context.Context, id int64) error
	Menu() []menu.Category
	Location() *time.Location
	// Close flushes queued order events.
	Close()
}

// EventPublisher delivers order lifecycle events to whoever listens.
type EventPublisher interface {
	PublishOrderEvent(ctx context.Context, ev dao.OrderEvent) error
}

type Service struct {
	OrderService OrderServiceInterface
}

func New(repo repository.Repository, catalog *menu.Catalog, lg *logger.Logger, opts ...Option) *Service {
	return &Service{
		OrderService: NewOrderService(repo.OrderRepo, catalog, lg, opts...),
	}
}

type Option func(*OrderService)

func WithEvents(p EventPublisher) Option {
	return func(s *OrderService) { s.events = p }
}

func WithFeedCache(c cache.FeedCache) Option {
	return func(s *OrderService) { s.cache = c }
}

func WithClock(now func() time.Time) Option {
	return func(s *OrderService) { s.now = now }
}

// WithLocation sets the zone order times are displayed in.
func WithLocation(loc *time.Location) Option {
	return func(s *OrderService) { s.loc = loc }
}

type OrderService struct {
	repo    repository.OrderRepositoryInterface
	catalog *menu.Catalog
	events  EventPublisher
	cache   cache.FeedCache
	loc     *time.Location
	now     func() time.Time
	lg      *logger.Logger

	// events are published in order by one background worker
	mu     sync.Mutex
	queue  chan queuedEvent
	closed bool
	wg     sync.WaitGroup
}

type queuedEvent struct {
	ev dao.OrderEvent
	lg *logger.Logger
}

const (
	sideEffectTimeout = 5 * time.Second
	eventQueueSize    = 256
)

func NewOrderService(repo repository.OrderRepositoryInterface, catalog *menu.Catalog, lg *logger.Logger, opts ...Option) *OrderService {
	if catalog == nil {
		catalog = menu.Default()
	}
	if lg == nil {
		lg = logger.New("order-service")
	}
	s := &OrderService{
		repo:    repo,
		catalog: catalog,
		loc:     time.UTC,
		now:     time.Now,
		lg:      lg,
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.events != nil {
		s.queue = make(chan queuedEvent, eventQueueSize)
		s.wg.Add(1)
		go s.publishLoop()
	}
	return s
}

func (s *OrderService) Menu() []menu.Category { return s.catalog.Categories() }

func (s *OrderService) Location() *time.Location { return s.loc }

// Close stops accepting events and waits until the queued ones are published.
func (s *OrderService) Close() {
	s.mu.Lock()
	if !s.closed && s.queue != nil {
		close(s.queue)
	}
	s.closed = true
	s.mu.Unlock()
	s.wg.Wait()
}

func (s *OrderService) publishLoop() {
	defer s.wg.Done()
	for q := range s.queue {
		ctx, cancel := context.WithTimeout(context.Background(), sideEffectTimeout)
		err := s.events.PublishOrderEvent(ctx, q.ev)
		cancel()
		if err != nil {
			q.lg.Error("order_event_publish_failed", err, map[string]any{
				"order_id":   q.ev.OrderID,
				"event_type": q.ev.EventType,
			})
		}
	}
}

// afterChange drops the cached feed and queues ev for publishing. Neither
// failure reaches the caller, and the request never waits on the broker.
func (s *OrderService) afterChange(ctx context.Context, ev dao.OrderEvent) {
	lg := logger.FromContext(ctx, s.lg)

	if s.cache != nil {
		cctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sideEffectTimeout)
		if err := s.cache.Invalidate(cctx); err != nil {
			lg.Error("feed_cache_invalidate_failed", err, map[string]any{"order_id": ev.OrderID})
		}
		cancel()
	}
	s.enqueue(queuedEvent{ev: ev, lg: lg})
}

func (s *OrderService) enqueue(q queuedEvent) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.queue == nil || s.closed {
		return
	}
	select {
	case s.queue <- q:
	default:
		q.lg.Error("order_event_dropped", errors.New("event queue full"), map[string]any{
			"order_id":   q.ev.OrderID,
			"event_type": q.ev.EventType,
		})
	}
}
