package claim

import (
	"context"
	"errors"
	"log/slog"
)

var (
	ErrMissingFields      = errors.New("name, mobile and bill number are required")
	ErrDuplicateBill      = errors.New("bill already claimed by another mobile number")
	ErrDuplicateMobile    = errors.New("voucher already claimed for this bill and mobile number")
	ErrInsufficientAmount = errors.New("bill amount too low for a voucher")
	ErrBillNotFound       = errors.New("no claim found for bill")
)

// Service runs one claim submission end to end: snapshot the ledger, check
// eligibility, allocate vouchers, append the rows. Each submission is a
// single read-then-decide-then-append sequence; the snapshot is discarded
// afterwards.
type Service struct {
	ledger    Ledger
	engine    Engine
	followURL string
	log       *slog.Logger
}

func NewService(ledger Ledger,
	engine Engine,
	followURL string,
	log *slog.Logger,
) *Service {
	return &Service{
		ledger:    ledger,
		engine:    engine,
		followURL: followURL,
		log:       log,
	}
}

// SubmitResult lists what a successful claim produced.
type SubmitResult struct {
	Vouchers  []string
	Count     int
	FollowURL string
}

func (s *Service) Submit(ctx context.Context, sub Submission) (*SubmitResult, error) {
	s.log.Info("starting claim submission", "bill_no", sub.BillNo, "mobile", sub.Mobile)
	defer s.log.Info("finished claim submission", "bill_no", sub.BillNo, "mobile", sub.Mobile)

	snapshot, err := s.ledger.ReadAll(ctx)
	if err != nil {
		s.log.Error("failed to snapshot ledger", "bill_no", sub.BillNo, "error", err)
		return nil, err
	}

	outcome := s.engine.CheckEligibility(snapshot, sub)
	if outcome != Eligible {
		s.log.Warn("claim rejected",
			"bill_no", sub.BillNo, "mobile", sub.Mobile, "outcome", outcome.String())
		return nil, rejectionError(outcome)
	}

	vouchers, records := s.engine.Allocate(snapshot, sub)

	for i, rec := range records {
		if err := s.ledger.Append(ctx, rec); err != nil {
			s.log.Error("claim append failed partway",
				"bill_no", sub.BillNo, "written", i, "total", len(records), "error", err)
			return nil, err
		}
	}

	s.log.Info("claim accepted",
		"bill_no", sub.BillNo, "mobile", sub.Mobile, "vouchers", len(vouchers))

	return &SubmitResult{
		Vouchers:  vouchers,
		Count:     len(vouchers),
		FollowURL: s.followURL,
	}, nil
}

// GetBillDetails returns the vouchers already issued against one bill.
func (s *Service) GetBillDetails(ctx context.Context, billNo string) (*Details, error) {
	s.log.Info("getting bill details", "bill_no", billNo)

	snapshot, err := s.ledger.ReadAll(ctx)
	if err != nil {
		s.log.Error("failed to snapshot ledger", "bill_no", billNo, "error", err)
		return nil, err
	}

	var details *Details
	for _, rec := range snapshot {
		if rec.BillNo != billNo {
			continue
		}
		if details == nil {
			details = &Details{
				BillNo: rec.BillNo,
				Name:   rec.Name,
				Mobile: rec.Mobile,
				Amount: rec.Amount,
			}
		}
		details.Vouchers = append(details.Vouchers, rec.Voucher)
	}

	if details == nil {
		s.log.Warn("bill not found", "bill_no", billNo)
		return nil, ErrBillNotFound
	}

	s.log.Info("bill details retrieved", "bill_no", billNo, "vouchers", len(details.Vouchers))
	return details, nil
}

func rejectionError(outcome Outcome) error {
	switch outcome {
	case RejectedMissingFields:
		return ErrMissingFields
	case RejectedDuplicateBill:
		return ErrDuplicateBill
	case RejectedDuplicateMobile:
		return ErrDuplicateMobile
	case RejectedInsufficientAmount:
		return ErrInsufficientAmount
	default:
		return errors.New("claim rejected")
	}
}
