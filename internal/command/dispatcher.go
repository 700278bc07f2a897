package command

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/roach88/contacts/internal/contact"
)

// Repository is the storage surface the Dispatcher needs.
// *store.Store satisfies it.
type Repository interface {
	Insert(ctx context.Context, name, phoneNo string) (int64, error)
	List(ctx context.Context) ([]contact.Contact, error)
	Get(ctx context.Context, id int64) (contact.Contact, bool, error)
	UpdatePhone(ctx context.Context, id int64, phoneNo string) (int64, error)
	Delete(ctx context.Context, id int64) (int64, error)
	Import(ctx context.Context, contacts []contact.Contact) ([]int64, error)
}

// Dispatcher executes requests against a Repository.
type Dispatcher struct {
	repo   Repository
	logger *slog.Logger
}

// NewDispatcher creates a Dispatcher. A nil logger uses slog.Default().
func NewDispatcher(repo Repository, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Dispatcher{repo: repo, logger: logger}
}

// Dispatch executes req and returns its Result. It never panics on storage
// failures; they are returned in Result.Err.
func (d *Dispatcher) Dispatch(ctx context.Context, req Request) Result {
	var res Result
	switch r := req.(type) {
	case Add:
		res = d.add(ctx, r)
	case UpdatePhone:
		res = d.updatePhone(ctx, r)
	case Delete:
		res = d.delete(ctx, r)
	case Get:
		res = d.get(ctx, r)
	case List:
		res = d.list(ctx)
	case Import:
		res = d.importAll(ctx, r)
	default:
		res = Result{Err: fmt.Errorf("unsupported request %T", req)}
	}
	if req != nil {
		res.Kind = req.Kind()
	}
	d.log(ctx, res)
	return res
}

func (d *Dispatcher) add(ctx context.Context, r Add) Result {
	if err := contact.Validate(r.Name, r.PhoneNo); err != nil {
		return Result{Err: err}
	}
	id, err := d.repo.Insert(ctx, r.Name, r.PhoneNo)
	return Result{ID: id, Err: err}
}

func (d *Dispatcher) updatePhone(ctx context.Context, r UpdatePhone) Result {
	if err := contact.Validate(r.Name, r.PhoneNo); err != nil {
		return Result{Err: err}
	}
	n, err := d.repo.UpdatePhone(ctx, r.ID, r.PhoneNo)
	return Result{Affected: n, Err: err}
}

func (d *Dispatcher) delete(ctx context.Context, r Delete) Result {
	n, err := d.repo.Delete(ctx, r.ID)
	return Result{Affected: n, Err: err}
}

func (d *Dispatcher) get(ctx context.Context, r Get) Result {
	c, found, err := d.repo.Get(ctx, r.ID)
	return Result{Contact: c, Found: found, Err: err}
}

func (d *Dispatcher) list(ctx context.Context) Result {
	cs, err := d.repo.List(ctx)
	return Result{Contacts: cs, Err: err}
}

func (d *Dispatcher) importAll(ctx context.Context, r Import) Result {
	for i, c := range r.Contacts {
		if err := contact.Validate(c.Name, c.PhoneNo); err != nil {
			return Result{Err: fmt.Errorf("record %d: %w", i+1, err)}
		}
	}
	ids, err := d.repo.Import(ctx, r.Contacts)
	return Result{IDs: ids, Err: err}
}

func (d *Dispatcher) log(ctx context.Context, res Result) {
	if res.Err == nil {
		d.logger.DebugContext(ctx, "request dispatched",
			"kind", res.Kind,
			"id", res.ID,
			"affected", res.Affected,
			"found", res.Found,
			"rows", len(res.Contacts),
		)
		return
	}

	level := slog.LevelDebug
	switch contact.CodeOf(res.Err) {
	case contact.ErrCodeDuplicatePhone, contact.ErrCodeValidation:
		// user-correctable
	default:
		level = slog.LevelWarn
	}
	d.logger.Log(ctx, level, "request failed",
		"kind", res.Kind,
		"code", contact.CodeOf(res.Err),
		"error", res.Err,
	)
}
