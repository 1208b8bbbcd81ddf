// Package buckets maps continuous context values onto the discrete keys
// the strategy tables are authored against: effective stack depth onto
// four ordered buckets, tournament stage onto a risk-tolerance tier.
package buckets

import "github.com/coachlabs/holdem-coach/pkg/spot"

// StackBucket is a discrete effective-stack depth class
type StackBucket string

const (
	BucketShort    StackBucket = "le20"  // ≤ 20bb
	BucketMid      StackBucket = "21-40" // 21–40bb
	BucketDeep     StackBucket = "41-80" // 41–80bb
	BucketVeryDeep StackBucket = "gt80"  // > 80bb
)

// ForStack maps an effective stack in big blinds to its bucket. Total over
// all positive stacks.
func ForStack(bb float64) StackBucket {
	switch {
	case bb <= 20:
		return BucketShort
	case bb <= 40:
		return BucketMid
	case bb <= 80:
		return BucketDeep
	default:
		return BucketVeryDeep
	}
}

// RiskTier orders tournament stages by risk tolerance. Lower tolerance
// means survival pressure discounts high-variance lines.
type RiskTier uint8

const (
	RiskNormal RiskTier = iota
	RiskElevated
	RiskLow
)

// String returns the tier name
func (r RiskTier) String() string {
	switch r {
	case RiskNormal:
		return "normal"
	case RiskElevated:
		return "elevated"
	case RiskLow:
		return "low_tolerance"
	default:
		return "unknown"
	}
}

// ForStage maps a tournament stage to its risk tier. The empty stage
// (cash games) is normal. Total over all valid stages.
func ForStage(stage spot.Stage) RiskTier {
	switch stage {
	case spot.StageBubble, spot.StageFTBubble:
		return RiskLow
	case spot.StageInMoney, spot.StageFinalTable:
		return RiskElevated
	default:
		return RiskNormal
	}
}
