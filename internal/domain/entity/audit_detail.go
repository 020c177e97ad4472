package entity

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// AuditSlotLayout is the timestamp layout used inside audit details: ISO-8601
// local time without a timezone suffix. Downstream statistics parse this
// format, so it must never change.
const AuditSlotLayout = "2006-01-02T15:04:05"

// MaxAuditDetailLength caps the encoded detail string. Longer payloads are
// truncated, never rejected.
const MaxAuditDetailLength = 512

// AuditDetail is a closed set of typed audit payloads. Each variant encodes
// to the legacy ";"-separated "key=value" wire format with keys among
// {game, slot, reason, fromGame, fromSlot, toGame, toSlot, targetUserId}.
// Values containing ';' or '=' are not escaped; the format predates this
// codec and is kept bit-compatible.
type AuditDetail interface {
	appendPairs(enc *detailEncoder)
}

// ScheduledDetail records a slot registration (or the slot a party event
// concerns).
type ScheduledDetail struct {
	Game string
	Slot time.Time
}

func (d ScheduledDetail) appendPairs(enc *detailEncoder) {
	enc.add("game", d.Game)
	enc.add("slot", d.Slot.Format(AuditSlotLayout))
}

// RemovedDetail records a timetable entry removal and why it happened.
type RemovedDetail struct {
	Game   string
	Slot   time.Time
	Reason RemovalReason
}

func (d RemovedDetail) appendPairs(enc *detailEncoder) {
	enc.add("game", d.Game)
	enc.add("slot", d.Slot.Format(AuditSlotLayout))
	enc.add("reason", string(d.Reason))
}

// MovedDetail records an eviction caused by joining another party: the entry
// the user abandoned and the slot they moved to.
type MovedDetail struct {
	FromGame string
	FromSlot time.Time
	ToGame   string
	ToSlot   time.Time
}

func (d MovedDetail) appendPairs(enc *detailEncoder) {
	enc.add("game", d.FromGame)
	enc.add("slot", d.FromSlot.Format(AuditSlotLayout))
	enc.add("reason", string(ReasonPartyMove))
	enc.add("fromGame", d.FromGame)
	enc.add("fromSlot", d.FromSlot.Format(AuditSlotLayout))
	enc.add("toGame", d.ToGame)
	enc.add("toSlot", d.ToSlot.Format(AuditSlotLayout))
}

// KickedDetail records the removal of another user's entry by a moderator.
type KickedDetail struct {
	Game         string
	Slot         time.Time
	TargetUserID uuid.UUID
}

func (d KickedDetail) appendPairs(enc *detailEncoder) {
	enc.add("game", d.Game)
	enc.add("slot", d.Slot.Format(AuditSlotLayout))
	enc.add("reason", string(ReasonKick))
	enc.add("targetUserId", d.TargetUserID.String())
}

// DeliverySummaryDetail summarizes one notification fan-out call: a single
// bounded row per call regardless of recipient count.
type DeliverySummaryDetail struct {
	Category   NotificationCategory
	Recipients int
	Panels     int
	Sent       int
	Failed     int
}

func (d DeliverySummaryDetail) appendPairs(enc *detailEncoder) {
	enc.add("category", string(d.Category))
	enc.add("recipients", strconv.Itoa(d.Recipients))
	enc.add("panels", strconv.Itoa(d.Panels))
	enc.add("sent", strconv.Itoa(d.Sent))
	enc.add("failed", strconv.Itoa(d.Failed))
}

// EncodeAuditDetail serializes a detail variant to the wire format, truncated
// to MaxAuditDetailLength.
func EncodeAuditDetail(detail AuditDetail) string {
	if detail == nil {
		return ""
	}

	enc := &detailEncoder{}
	detail.appendPairs(enc)

	encoded := enc.String()
	if len(encoded) > MaxAuditDetailLength {
		encoded = encoded[:MaxAuditDetailLength]
	}

	return encoded
}

// ParseAuditDetails splits an encoded detail string back into key/value
// pairs. Later duplicate keys win; malformed segments are skipped. This is
// the reader used by the statistics aggregation.
func ParseAuditDetails(details string) map[string]string {
	pairs := make(map[string]string)
	for _, segment := range strings.Split(details, ";") {
		key, value, ok := strings.Cut(segment, "=")
		if !ok || key == "" {
			continue
		}
		pairs[key] = value
	}

	return pairs
}

type detailEncoder struct {
	sb strings.Builder
}

func (e *detailEncoder) add(key, value string) {
	if e.sb.Len() > 0 {
		e.sb.WriteByte(';')
	}
	e.sb.WriteString(key)
	e.sb.WriteByte('=')
	e.sb.WriteString(value)
}

func (e *detailEncoder) String() string {
	return e.sb.String()
}
