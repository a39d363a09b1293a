package accident

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/headmetal/headware-backend/internal/domain"
)

// ===========================================================================
// Manual mocks (moq-style with func fields)
// ===========================================================================

type mockAccidentRepo struct {
	CreateFunc  func(ctx context.Context, report *domain.AccidentReport) error
	createCalls []*domain.AccidentReport
}

func (m *mockAccidentRepo) Create(ctx context.Context, report *domain.AccidentReport) error {
	m.createCalls = append(m.createCalls, report)
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, report)
	}
	return nil
}

type mockWorkerRepo struct {
	GetByIDFunc func(ctx context.Context, id string) (*domain.Worker, error)
}

func (m *mockWorkerRepo) GetByID(ctx context.Context, id string) (*domain.Worker, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, id)
	}
	return nil, domain.ErrNotFound
}

type mockWorkRepo struct {
	ListIDsByWorkerFunc func(ctx context.Context, workerID string) ([]string, error)
}

func (m *mockWorkRepo) ListIDsByWorker(ctx context.Context, workerID string) ([]string, error) {
	if m.ListIDsByWorkerFunc != nil {
		return m.ListIDsByWorkerFunc(ctx, workerID)
	}
	return []string{}, nil
}

type mockNotifier struct {
	NotifyTopicFunc func(ctx context.Context, topic, title, body string) error
	notifyCalls     []string
}

func (m *mockNotifier) NotifyTopic(ctx context.Context, topic, title, body string) error {
	m.notifyCalls = append(m.notifyCalls, topic)
	if m.NotifyTopicFunc != nil {
		return m.NotifyTopicFunc(ctx, topic, title, body)
	}
	return nil
}

type mockImageStore struct {
	SaveFunc func(filename string, content io.Reader) (string, error)
}

func (m *mockImageStore) Save(filename string, content io.Reader) (string, error) {
	if m.SaveFunc != nil {
		return m.SaveFunc(filename, content)
	}
	return filename, nil
}

type deps struct {
	accidents *mockAccidentRepo
	workers   *mockWorkerRepo
	works     *mockWorkRepo
	push      *mockNotifier
	images    *mockImageStore
}

func newTestService(t *testing.T) (*Service, *deps) {
	t.Helper()

	d := &deps{
		accidents: &mockAccidentRepo{},
		workers:   &mockWorkerRepo{},
		works:     &mockWorkRepo{},
		push:      &mockNotifier{},
		images:    &mockImageStore{},
	}
	svc := NewService(slog.Default(), d.accidents, d.workers, d.works, d.push, d.images)
	return svc, d
}

// ===========================================================================
// Report
// ===========================================================================

func TestReport_Success(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.workers.GetByIDFunc = func(ctx context.Context, id string) (*domain.Worker, error) {
		return &domain.Worker{ID: id, Name: "Kim Cheolsu"}, nil
	}

	var notifiedTitle, notifiedBody string
	d.push.NotifyTopicFunc = func(ctx context.Context, topic, title, body string) error {
		notifiedTitle, notifiedBody = title, body
		return nil
	}

	if err := svc.Report(context.Background(), validInput()); err != nil {
		t.Fatalf("Report() error: %v", err)
	}

	if len(d.accidents.createCalls) != 1 {
		t.Fatalf("persisted rows: got %d, want exactly 1", len(d.accidents.createCalls))
	}
	report := d.accidents.createCalls[0]
	if report.Category != "fall" || report.WorkID != "W1" || report.VictimID != "U1" {
		t.Errorf("persisted report: %+v", report)
	}
	if report.OccurredAt.Year() != 2024 || report.OccurredAt.Hour() != 9 {
		t.Errorf("occurred at: %v", report.OccurredAt)
	}

	if len(d.push.notifyCalls) != 1 || d.push.notifyCalls[0] != "W1" {
		t.Fatalf("notify calls: got %v, want one dispatch to topic W1", d.push.notifyCalls)
	}
	if notifiedTitle != "fall accident reported!" {
		t.Errorf("notification title: got %q", notifiedTitle)
	}
	if notifiedBody != "victim: Kim Cheolsu (U1)" {
		t.Errorf("notification body: got %q", notifiedBody)
	}
}

func TestReport_UnknownVictim(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	// workers mock defaults to ErrNotFound

	err := svc.Report(context.Background(), validInput())
	if !errors.Is(err, domain.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}

	if len(d.accidents.createCalls) != 0 {
		t.Errorf("no row must be persisted for an unknown victim, got %d", len(d.accidents.createCalls))
	}
	if len(d.push.notifyCalls) != 0 {
		t.Errorf("no notification must be dispatched for an unknown victim, got %d", len(d.push.notifyCalls))
	}
}

func TestReport_ValidationShortCircuits(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)

	input := validInput()
	input.Date = [3]int{2024, 2, 30}

	err := svc.Report(context.Background(), input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(d.accidents.createCalls) != 0 {
		t.Errorf("invalid input must not reach the repository")
	}
}

func TestReport_PersistFailure(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.workers.GetByIDFunc = func(ctx context.Context, id string) (*domain.Worker, error) {
		return &domain.Worker{ID: id, Name: "Kim"}, nil
	}
	d.accidents.CreateFunc = func(ctx context.Context, report *domain.AccidentReport) error {
		return errors.New("disk full")
	}

	if err := svc.Report(context.Background(), validInput()); err == nil {
		t.Fatal("expected error, got nil")
	}
	if len(d.push.notifyCalls) != 0 {
		t.Errorf("no notification must be sent when persistence fails")
	}
}

func TestReport_PushFailureIsNonFatal(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.workers.GetByIDFunc = func(ctx context.Context, id string) (*domain.Worker, error) {
		return &domain.Worker{ID: id, Name: "Kim"}, nil
	}
	d.push.NotifyTopicFunc = func(ctx context.Context, topic, title, body string) error {
		return errors.New("fcm unavailable")
	}

	if err := svc.Report(context.Background(), validInput()); err != nil {
		t.Fatalf("push failure must not fail the request: %v", err)
	}
	if len(d.accidents.createCalls) != 1 {
		t.Errorf("report must still be persisted")
	}
}

func TestReport_NilNotifier(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.workers.GetByIDFunc = func(ctx context.Context, id string) (*domain.Worker, error) {
		return &domain.Worker{ID: id, Name: "Kim"}, nil
	}
	svc.push = nil

	if err := svc.Report(context.Background(), validInput()); err != nil {
		t.Fatalf("Report() with push disabled: %v", err)
	}
}

// ===========================================================================
// WorkList
// ===========================================================================

func TestWorkList_ReturnsIDsInOrder(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.works.ListIDsByWorkerFunc = func(ctx context.Context, workerID string) ([]string, error) {
		return []string{"W2", "W1"}, nil
	}

	got, err := svc.WorkList(context.Background(), "U1")
	if err != nil {
		t.Fatalf("WorkList() error: %v", err)
	}
	if len(got) != 2 || got[0] != "W2" || got[1] != "W1" {
		t.Errorf("WorkList() = %v, storage order must be preserved", got)
	}
}

func TestWorkList_UnknownWorkerIsEmpty(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	got, err := svc.WorkList(context.Background(), "nobody")
	if err != nil {
		t.Fatalf("unknown worker must not error: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("WorkList() = %v, want empty", got)
	}
}

func TestWorkList_EmptyID(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	_, err := svc.WorkList(context.Background(), "")
	if !errors.Is(err, domain.ErrValidation) {
		t.Errorf("expected ErrValidation, got %v", err)
	}
}

// ===========================================================================
// StoreImage
// ===========================================================================

func TestStoreImage_Success(t *testing.T) {
	t.Parallel()

	svc, _ := newTestService(t)

	name, err := svc.StoreImage(context.Background(), "scene.jpg", strings.NewReader("bytes"))
	if err != nil {
		t.Fatalf("StoreImage() error: %v", err)
	}
	if name != "scene.jpg" {
		t.Errorf("stored name: got %q", name)
	}
}

func TestStoreImage_Failure(t *testing.T) {
	t.Parallel()

	svc, d := newTestService(t)
	d.images.SaveFunc = func(filename string, content io.Reader) (string, error) {
		return "", errors.New("read-only filesystem")
	}

	if _, err := svc.StoreImage(context.Background(), "scene.jpg", strings.NewReader("x")); err == nil {
		t.Fatal("expected error, got nil")
	}
}
