package claim

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Outcome is the result of an eligibility check.
type Outcome int

const (
	Eligible Outcome = iota
	RejectedMissingFields
	RejectedDuplicateBill
	RejectedDuplicateMobile
	RejectedInsufficientAmount
)

func (o Outcome) String() string {
	switch o {
	case Eligible:
		return "eligible"
	case RejectedMissingFields:
		return "rejected_missing_fields"
	case RejectedDuplicateBill:
		return "rejected_duplicate_bill"
	case RejectedDuplicateMobile:
		return "rejected_duplicate_mobile"
	case RejectedInsufficientAmount:
		return "rejected_insufficient_amount"
	default:
		return "unknown"
	}
}

// DuplicatePolicy selects which key identifies a prior claim.
type DuplicatePolicy string

const (
	// PolicyPair rejects a (bill, mobile) pair seen before as a
	// duplicate mobile, and a bill seen under a different mobile as a
	// consumed bill.
	PolicyPair DuplicatePolicy = "pair"
	// PolicyBill rejects on bill number alone.
	PolicyBill DuplicatePolicy = "bill"
	// PolicyMobile rejects on mobile number alone.
	PolicyMobile DuplicatePolicy = "mobile"
)

// ParsePolicy maps a config string to a policy, defaulting to PolicyPair.
func ParsePolicy(s string) DuplicatePolicy {
	switch DuplicatePolicy(strings.ToLower(s)) {
	case PolicyBill:
		return PolicyBill
	case PolicyMobile:
		return PolicyMobile
	default:
		return PolicyPair
	}
}

// Engine is the eligibility and allocation decision procedure. It is pure:
// both operations read only the ledger snapshot and submission they are
// given, perform no I/O, and never fail.
type Engine struct {
	Policy DuplicatePolicy
	Unit   float64
}

// NewEngine returns an engine with the given duplicate policy and currency
// units per voucher. A non-positive unit falls back to 50.
func NewEngine(policy DuplicatePolicy, unit float64) Engine {
	if unit <= 0 {
		unit = 50
	}
	return Engine{Policy: policy, Unit: unit}
}

// CheckEligibility evaluates a submission against a ledger snapshot.
// Checks run short-circuit in a fixed order: required fields, duplicates,
// then amount. The first failing check wins.
func (e Engine) CheckEligibility(ledger []Record, sub Submission) Outcome {
	if strings.TrimSpace(sub.Name) == "" ||
		strings.TrimSpace(sub.Mobile) == "" ||
		strings.TrimSpace(sub.BillNo) == "" ||
		sub.Amount < 1 {
		return RejectedMissingFields
	}

	for _, rec := range ledger {
		switch e.Policy {
		case PolicyBill:
			if rec.BillNo == sub.BillNo {
				return RejectedDuplicateBill
			}
		case PolicyMobile:
			if rec.Mobile == sub.Mobile {
				return RejectedDuplicateMobile
			}
		default:
			if rec.BillNo == sub.BillNo {
				if rec.Mobile == sub.Mobile {
					return RejectedDuplicateMobile
				}
				return RejectedDuplicateBill
			}
		}
	}

	if e.voucherCount(sub.Amount) < 1 {
		return RejectedInsufficientAmount
	}

	return Eligible
}

// Allocate produces the voucher identifiers and ledger rows for an eligible
// submission. Identifiers are VCHR- plus a 5-digit zero-padded sequence
// seeded from the snapshot's row count, so they are only unique when no
// other writer appends between the snapshot read and the append.
func (e Engine) Allocate(ledger []Record, sub Submission) ([]string, []Record) {
	count := e.voucherCount(sub.Amount)
	if count < 1 {
		count = 1
	}

	now := time.Now().UTC()
	vouchers := make([]string, 0, count)
	records := make([]Record, 0, count)

	for i := 0; i < count; i++ {
		voucher := fmt.Sprintf("VCHR-%05d", len(ledger)+i+1)
		vouchers = append(vouchers, voucher)
		records = append(records, Record{
			ID:          uuid.NewString(),
			Name:        sub.Name,
			Mobile:      sub.Mobile,
			BillNo:      sub.BillNo,
			Amount:      sub.Amount,
			Voucher:     voucher,
			Nationality: sub.Nationality,
			Email:       sub.Email,
			Address:     sub.Address,
			CreatedAt:   now,
		})
	}

	return vouchers, records
}

func (e Engine) voucherCount(amount float64) int {
	return int(math.Floor(amount / e.Unit))
}
