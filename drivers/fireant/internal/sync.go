package driver

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/fireant-io/tap-fireant/constants"
	"github.com/fireant-io/tap-fireant/logger"
	"github.com/fireant-io/tap-fireant/types"
	"github.com/fireant-io/tap-fireant/utils"
	"github.com/fireant-io/tap-fireant/utils/typeutils"
	"github.com/hashicorp/go-multierror"
)

// Sync drives every selected stream to completion, strictly sequentially:
// the root instruments stream drains first and fans out one context per
// qualifying record; each child stream+context unit then drains all its
// pages before the next unit starts. A failed unit aborts only itself;
// credential failures and cancellation abort the run.
func (f *Fireant) Sync(ctx context.Context, streams []types.StreamInterface) error {
	var root types.StreamInterface
	children := []types.StreamInterface{}
	for _, stream := range streams {
		if stream.GetStream().Parent == "" {
			root = stream
		} else {
			children = append(children, stream)
		}
	}

	today := day(time.Now())

	// the root stream is drained even when only children are selected;
	// its records are what fan out the child contexts
	emitRoot := root != nil
	if root == nil {
		definitions := streamDefinitions()
		idx, found := utils.ArrayContains(definitions, func(elem *types.Stream) bool {
			return elem.Parent == ""
		})
		if !found {
			return fmt.Errorf("no root stream defined")
		}
		root = definitions[idx].Wrap()
	}

	contexts := []string{}
	err := f.syncUnit(ctx, root, "", today, func(record types.Record) error {
		if symbol, qualified := childContext(record); qualified {
			contexts = append(contexts, symbol)
		}
		if emitRoot {
			return f.emit(root.Name(), record)
		}
		return nil
	})
	if err != nil {
		// without instruments there are no contexts to continue with
		return fmt.Errorf("stream[%s]: %w", root.ID(), err)
	}
	logger.Infof("Stream %s produced %d child contexts", root.ID(), len(contexts))

	var errs *multierror.Error
	for _, stream := range children {
		streamStartTime := time.Now()
		for _, symbol := range contexts {
			if err := ctx.Err(); err != nil {
				return err
			}

			err := f.syncUnit(ctx, stream, symbol, today, func(record types.Record) error {
				return f.emit(stream.Name(), record)
			})
			if err != nil {
				if errors.Is(err, ErrAuth) || ctx.Err() != nil {
					return fmt.Errorf("stream[%s] symbol[%s]: %w", stream.ID(), symbol, err)
				}
				errs = multierror.Append(errs, fmt.Errorf("stream[%s] symbol[%s]: %s", stream.ID(), symbol, err))
				logger.Errorf("Aborted unit stream[%s] symbol[%s]: %s", stream.ID(), symbol, err)
				continue
			}

			// bookmarks of a drained unit are durable from here on
			logger.LogState(f.state)
		}
		logger.Infof("Finished reading stream %s in %s", stream.ID(), time.Since(streamStartTime).String())
	}

	return errs.ErrorOrNil()
}

// childContext applies the qualification filter: only tradable instruments
// with a three-letter symbol fan out child units. Non-qualifying records
// produce no context at all, never a context with an empty symbol.
func childContext(record types.Record) (string, bool) {
	instrumentType, _ := record[constants.InstrumentTypeField].(string)
	symbol, _ := record[constants.SymbolField].(string)
	if instrumentType == constants.TradableInstrumentType && len(symbol) == constants.TradableSymbolLength {
		return symbol, true
	}
	return "", false
}

// syncUnit drains one stream+context unit: INIT -> request -> map ->
// (continue? request : done). Bookmarks advance per successfully mapped
// page, so an abort never loses pages already processed within the run.
func (f *Fireant) syncUnit(ctx context.Context, stream types.StreamInterface, symbol string, today time.Time, fn recordFn) error {
	def := stream.GetStream()
	path := strings.ReplaceAll(def.Path, "{symbol}", symbol)

	// child bookmarks are keyed by symbol, the root by its cursor field
	cursorKey := utils.Ternary(symbol != "", symbol, stream.Cursor()).(string)
	start := f.unitStartDate(stream, cursorKey, today)

	var win *window
	if def.Pagination == types.DateWindow {
		first := firstWindow(start, today)
		win = &first
	}

	pages := 0
	for {
		params := buildParams(stream, win, start, today)
		body, requestURL, err := f.client.Get(ctx, path, params)
		if err != nil {
			return err
		}

		maxCursor := f.state.GetCursor(stream.Self(), cursorKey)
		records := 0
		err = parseResponse(def, requestURL, body, func(record types.Record) error {
			if cursor := stream.Cursor(); cursor != "" {
				if value, found := record[cursor]; found && value != nil {
					maxCursor = typeutils.MaxCursor(value, maxCursor)
				}
			}
			records++
			return fn(record)
		})
		if err != nil {
			return err
		}

		pages++
		if stream.Cursor() != "" && maxCursor != nil {
			f.state.SetCursor(stream.Self(), cursorKey, maxCursor)
		}
		logger.Debugf("stream[%s] page %d: %d records", stream.ID(), pages, records)

		if win == nil {
			// single-shot pagination: never a second page
			return nil
		}
		next, more := nextWindow(*win, today)
		if !more {
			return nil
		}
		win = &next

		// cancellation is honored between pages only, keeping bookmarks
		// consistent with the last fully mapped page
		if err := ctx.Err(); err != nil {
			return err
		}
	}
}
