// Package task polls the Redfish task collection and routes every active task
// to the handler registered for its target URI.
package task

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/google/uuid"
	"github.com/hashicorp/go-multierror"
	"github.com/ohler55/ojg"
	"github.com/ohler55/ojg/oj"
	"github.com/tidwall/gjson"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

// MaxEntries bounds the number of tasks tracked at the same time.
const MaxEntries = 255

const expandQuery = "$expand=.($levels=1)"

var (
	// ErrTooManyTasks is returned when MaxEntries tasks are already tracked.
	ErrTooManyTasks = errors.New("task - too many tracked tasks")

	// ErrMalformedTask is returned for a task without Id or @odata.id.
	ErrMalformedTask = errors.New("task - malformed task")
)

type entry struct {
	key     uuid.UUID
	taskID  string
	taskURI string
}

// Summary -.
type Summary struct {
	Seen     int
	Inactive int
	Unrouted int
	Handled  int
	Failed   int
}

// Dispatcher -.
type Dispatcher struct {
	client   Client
	registry *Registry
	expand   bool
	log      logger.Interface

	mu      sync.Mutex
	entries map[string]*entry
}

// Option -.
type Option func(*Dispatcher)

// WithExpand makes Dispatch read members inline through $expand instead of
// one GET per member.
func WithExpand(expand bool) Option {
	return func(d *Dispatcher) {
		d.expand = expand
	}
}

// NewDispatcher -.
func NewDispatcher(client Client, registry *Registry, log logger.Interface, opts ...Option) *Dispatcher {
	d := &Dispatcher{
		client:   client,
		registry: registry,
		log:      log,
		entries:  make(map[string]*entry),
	}

	for _, opt := range opts {
		opt(d)
	}

	return d
}

// Dispatch runs one poll of the task collection. A failing task does not
// stop the others; the failures are returned together.
func (d *Dispatcher) Dispatch(ctx context.Context, collectionURI string) (*Summary, error) {
	summary := &Summary{}

	members, err := d.members(ctx, collectionURI)
	if err != nil {
		return summary, err
	}

	var result *multierror.Error

	for _, raw := range members {
		if err := d.handle(ctx, raw, summary); err != nil {
			summary.Failed++
			result = multierror.Append(result, err)
		}
	}

	d.log.Debug("task - Dispatch - %s: %d seen, %d handled, %d failed", collectionURI, summary.Seen, summary.Handled, summary.Failed)

	return summary, result.ErrorOrNil()
}

// members returns the raw JSON of every task of the collection.
func (d *Dispatcher) members(ctx context.Context, collectionURI string) ([][]byte, error) {
	uri := collectionURI

	if d.expand {
		sep := "?"
		if strings.Contains(uri, "?") {
			sep = "&"
		}

		uri += sep + expandQuery
	}

	resp, err := d.client.Get(ctx, uri)
	if err != nil {
		return nil, fmt.Errorf("task - members - %s: %w", collectionURI, err)
	}

	if !gjson.ValidBytes(resp.Body) {
		return nil, fmt.Errorf("%w: %s is not JSON", ErrMalformedTask, collectionURI)
	}

	members := gjson.GetBytes(resp.Body, "Members").Array()
	out := make([][]byte, 0, len(members))

	for _, m := range members {
		if d.expand && m.Get("TaskState").Exists() {
			out = append(out, []byte(m.Raw))

			continue
		}

		link := m.Get(`@odata\.id`).String()
		if link == "" {
			continue
		}

		task, err := d.client.Get(ctx, link)
		if err != nil {
			d.log.Warn("task - members - %s: %v", link, err)

			continue
		}

		out = append(out, task.Body)
	}

	return out, nil
}

func (d *Dispatcher) handle(ctx context.Context, raw []byte, summary *Summary) error {
	summary.Seen++

	doc := gjson.ParseBytes(raw)
	stateText := doc.Get("TaskState").String()
	tasksSeen.WithLabelValues(stateText).Inc()

	state, ok := entity.ParseTaskState(stateText)
	if !ok || !state.IsActive() {
		summary.Inactive++

		return nil
	}

	taskID := doc.Get("Id").String()
	taskURI := doc.Get(`@odata\.id`).String()

	if taskID == "" || taskURI == "" {
		return fmt.Errorf("%w: Id %q @odata.id %q", ErrMalformedTask, taskID, taskURI)
	}

	req := &entity.TaskRequest{
		TaskID:    taskID,
		TaskURI:   taskURI,
		Operation: doc.Get("Payload.HttpOperation").String(),
		TargetURI: doc.Get("Payload.TargetUri").String(),
		JSONBody:  []byte(doc.Get("Payload.JsonBody").String()),
		Snapshot:  append([]byte(nil), raw...),
	}

	handler, ok := d.registry.Lookup(req.TargetURI)
	if !ok {
		summary.Unrouted++
		d.log.Debug("task - handle - task %s: no handler for %s", taskID, req.TargetURI)

		return nil
	}

	e, err := d.track(taskID, taskURI)
	if err != nil {
		return err
	}

	defer d.untrack(taskID)

	d.log.Info("task - handle - task %s (%s) %s %s", taskID, e.key, req.Operation, req.TargetURI)

	result := handler.HandleTask(ctx, req)
	if result.State != entity.TaskStateCompleted {
		d.log.Warn("task - handle - task %s finished %s/%s", taskID, result.State, result.Status)
	}

	summary.Handled++

	tasksHandled.WithLabelValues(string(result.State)).Inc()

	return d.writeBack(ctx, taskURI, result)
}

func (d *Dispatcher) track(taskID, taskURI string) (*entry, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if len(d.entries) >= MaxEntries {
		return nil, fmt.Errorf("%w: task %s", ErrTooManyTasks, taskID)
	}

	e := &entry{key: uuid.New(), taskID: taskID, taskURI: taskURI}
	d.entries[taskID] = e

	tasksTracked.Set(float64(len(d.entries)))

	return e, nil
}

func (d *Dispatcher) untrack(taskID string) {
	d.mu.Lock()
	defer d.mu.Unlock()

	delete(d.entries, taskID)

	tasksTracked.Set(float64(len(d.entries)))
}

// Tracked returns the number of tasks being handled.
func (d *Dispatcher) Tracked() int {
	d.mu.Lock()
	defer d.mu.Unlock()

	return len(d.entries)
}

// Close drops every tracked entry.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.entries = make(map[string]*entry)

	tasksTracked.Set(0)
}

func (d *Dispatcher) writeBack(ctx context.Context, taskURI string, result entity.TaskResult) error {
	body, err := oj.Marshal(map[string]any{
		"TaskState":  string(result.State),
		"TaskStatus": string(result.Status),
	}, &ojg.Options{Sort: true})
	if err != nil {
		return fmt.Errorf("task - writeBack: %w", err)
	}

	if _, err = d.client.Patch(ctx, taskURI, body); err != nil {
		return fmt.Errorf("task - writeBack - %s: %w", taskURI, err)
	}

	return nil
}

// ReportMessage forwards a diagnostic for a task being handled to the BMC.
func (d *Dispatcher) ReportMessage(ctx context.Context, taskID, message, severity string) error {
	d.mu.Lock()
	e, ok := d.entries[taskID]
	d.mu.Unlock()

	if !ok {
		return fmt.Errorf("%w: task %s", ErrNotFound, taskID)
	}

	body, err := oj.Marshal(map[string]any{
		"Messages": []any{
			map[string]any{"Message": message, "MessageSeverity": severity},
		},
	}, &ojg.Options{Sort: true})
	if err != nil {
		return fmt.Errorf("task - ReportMessage: %w", err)
	}

	if _, err = d.client.Patch(ctx, e.taskURI, body); err != nil {
		return fmt.Errorf("task - ReportMessage - %s: %w", e.taskURI, err)
	}

	return nil
}
