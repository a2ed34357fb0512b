// ABOUTME: Reactive live queries: per-table change notifications re-run a
// ABOUTME: read and emit to the subscriber whenever the result changes.
package storage

import (
	"context"
	"reflect"
	"sync"

	"github.com/fittrack/fittrack/internal/catalog"
	"github.com/fittrack/fittrack/internal/models"
)

type table int

const (
	tableLogs table = iota
	tableSettings
	tableCoreRecords
	tableSubRecords
)

func tableFor(group models.RecordGroup) table {
	if group == models.GroupSub {
		return tableSubRecords
	}
	return tableCoreRecords
}

// notifier fans one signal per written table out to subscriptions. Signal
// channels are buffered with depth 1 and sends never block, so adjacent
// rapid writes may coalesce into a single re-emission; emissions are still
// delivered in write order, never reordered.
type notifier struct {
	mu   sync.Mutex
	subs []*subscription
}

type subscription struct {
	tables map[table]bool
	signal chan struct{}
}

func (n *notifier) subscribe(tables ...table) *subscription {
	sub := &subscription{
		tables: make(map[table]bool, len(tables)),
		signal: make(chan struct{}, 1),
	}
	for _, t := range tables {
		sub.tables[t] = true
	}
	n.mu.Lock()
	n.subs = append(n.subs, sub)
	n.mu.Unlock()
	return sub
}

func (n *notifier) unsubscribe(sub *subscription) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for i, other := range n.subs {
		if other == sub {
			n.subs = append(n.subs[:i], n.subs[i+1:]...)
			return
		}
	}
}

func (n *notifier) publish(tables ...table) {
	n.mu.Lock()
	defer n.mu.Unlock()
	for _, sub := range n.subs {
		for _, t := range tables {
			if sub.tables[t] {
				select {
				case sub.signal <- struct{}{}:
				default:
				}
				break
			}
		}
	}
}

// liveQuery re-runs query after every relevant table write, emitting the
// result whenever it differs from the previous emission. The initial result
// is always emitted. Cancel via ctx; the channel closes on cancellation or
// query error.
func liveQuery[T any](ctx context.Context, s *Store, tables []table, query func() (T, error)) <-chan T {
	out := make(chan T)
	sub := s.watch.subscribe(tables...)

	go func() {
		defer close(out)
		defer s.watch.unsubscribe(sub)

		last, err := query()
		if err != nil {
			return
		}
		select {
		case out <- last:
		case <-ctx.Done():
			return
		}

		for {
			select {
			case <-ctx.Done():
				return
			case <-sub.signal:
			}

			next, err := query()
			if err != nil {
				return
			}
			if reflect.DeepEqual(next, last) {
				continue
			}
			last = next
			select {
			case out <- next:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// LiveLogs emits the log table, newest first, after every log write.
func (s *Store) LiveLogs(ctx context.Context) <-chan []*models.Log {
	return liveQuery(ctx, s, []table{tableLogs}, s.GetLogs)
}

// LiveSettings emits the settings after every settings write.
func (s *Store) LiveSettings(ctx context.Context) <-chan []models.Setting {
	return liveQuery(ctx, s, []table{tableSettings}, s.GetSettings)
}

// LiveCoreRecords emits the browsable catalog for one record type: enabled
// or not, name ascending, excluding records tied up in an active session.
func (s *Store) LiveCoreRecords(ctx context.Context, recordType models.RecordType) <-chan []*models.CoreRecord {
	return liveQuery(ctx, s, []table{tableCoreRecords}, func() ([]*models.CoreRecord, error) {
		return s.queryCoreRecords(
			`SELECT `+coreColumns+` FROM core_records WHERE record_type = ? AND active = 0 ORDER BY name COLLATE NOCASE ASC`,
			string(recordType))
	})
}

// LiveSubRecords emits the result history feed for one record type, most
// recent first, excluding in-progress placeholders.
func (s *Store) LiveSubRecords(ctx context.Context, recordType models.RecordType) <-chan []*models.SubRecord {
	return liveQuery(ctx, s, []table{tableSubRecords}, func() ([]*models.SubRecord, error) {
		return s.querySubRecords(
			`SELECT `+subColumns+` FROM sub_records WHERE record_type = ? AND active = 0 ORDER BY created_timestamp DESC`,
			string(recordType))
	})
}

// Dashboard partitions enabled core records per type into three buckets:
// active first, then favorited, then the rest, each bucket name-sorted.
type Dashboard map[models.RecordType][]*models.CoreRecord

// GetDashboard builds the dashboard from the current table state.
func (s *Store) GetDashboard() (Dashboard, error) {
	enabled, err := s.queryCoreRecords(
		`SELECT ` + coreColumns + ` FROM core_records WHERE enabled = 1 ORDER BY name COLLATE NOCASE ASC`)
	if err != nil {
		return nil, err
	}

	var active, favorited, rest []*models.CoreRecord
	for _, r := range enabled {
		switch {
		case r.Active:
			active = append(active, r)
		case r.Favorited:
			favorited = append(favorited, r)
		default:
			rest = append(rest, r)
		}
	}

	dashboard := make(Dashboard)
	for _, recordType := range catalog.DashboardTypes() {
		var bucket []*models.CoreRecord
		for _, group := range [][]*models.CoreRecord{active, favorited, rest} {
			for _, r := range group {
				if r.Type == recordType {
					bucket = append(bucket, r)
				}
			}
		}
		dashboard[recordType] = bucket
	}
	return dashboard, nil
}

// LiveDashboard emits the dashboard after every core-record write.
func (s *Store) LiveDashboard(ctx context.Context) <-chan Dashboard {
	return liveQuery(ctx, s, []table{tableCoreRecords}, s.GetDashboard)
}
