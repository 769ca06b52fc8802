package ingest

import (
	"errors"
	"io"

	"github.com/etnz/tradebook"
	"github.com/sirupsen/logrus"
)

// Pipeline normalizes extracted records and appends them to a ledger,
// consulting a Tracker to skip sources already ingested.
type Pipeline struct {
	cfg     Config
	tracker *Tracker
	log     *logrus.Logger
}

// NewPipeline builds a pipeline from an explicit configuration, an
// ingestion tracker and a logger.
func NewPipeline(cfg Config, tracker *Tracker, log *logrus.Logger) *Pipeline {
	return &Pipeline{cfg: cfg, tracker: tracker, log: log}
}

// IngestReport parses a broker daily report and appends its trades to the
// ledger. A source already seen by the tracker is skipped entirely.
//
// Ingestion of a source is atomic: if any record fails to normalize, no
// trade is appended, the source stays unseen, and every malformed record
// is returned joined into a single error. The ledger holds no duplicate
// detection of its own, so a partially appended source could never be
// safely re-ingested after a fix.
func (p *Pipeline) IngestReport(ledger *tradebook.Ledger, source string, r io.Reader) (added int, err error) {
	if p.tracker.Seen(source) {
		p.log.WithField("source", source).Info("already ingested, skipping")
		return 0, nil
	}

	records, err := ParseReport(r, source)
	if err != nil {
		return 0, err
	}
	return p.ingest(ledger, source, records)
}

// IngestCSV is IngestReport for records exported in the CSV format.
func (p *Pipeline) IngestCSV(ledger *tradebook.Ledger, source string, r io.Reader) (added int, err error) {
	if p.tracker.Seen(source) {
		p.log.WithField("source", source).Info("already ingested, skipping")
		return 0, nil
	}

	records, err := ReadCSV(r, source)
	if err != nil {
		return 0, err
	}
	return p.ingest(ledger, source, records)
}

func (p *Pipeline) ingest(ledger *tradebook.Ledger, source string, records []tradebook.RawRecord) (int, error) {
	var errs error
	var trades []tradebook.Trade
	for _, rec := range records {
		trade, err := tradebook.Normalize(rec, p.cfg.Currency)
		if err != nil {
			p.log.WithFields(logrus.Fields{
				"source": rec.Source,
				"row":    rec.Row,
			}).WithError(err).Warn("rejecting malformed record")
			errs = errors.Join(errs, err)
			continue
		}
		p.log.WithFields(logrus.Fields{
			"symbol": trade.Symbol,
			"side":   trade.Side.String(),
			"qty":    trade.Quantity.String(),
			"price":  trade.Price.String(),
		}).Debug("normalized trade")
		trades = append(trades, trade)
	}

	if errs != nil {
		p.log.WithFields(logrus.Fields{
			"source":    source,
			"found":     len(records),
			"malformed": len(records) - len(trades),
		}).Warn("rejecting source, no trade appended")
		return 0, errs
	}

	ledger.Append(trades...)
	p.tracker.Mark(source)
	p.log.WithFields(logrus.Fields{
		"source": source,
		"found":  len(records),
		"added":  len(trades),
	}).Info("ingested source")
	return len(trades), nil
}
