package tui

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/gillena202-a11y/wrest/internal/api"
)

// money formats dollar amounts with thousands separators.
var money = message.NewPrinter(language.AmericanEnglish)

// RenderStatus builds the multi-line career summary from display
// snapshots. Pure function of its inputs; no core state is touched.
func RenderStatus(p api.PlayerInfo, s api.SeasonInfo) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Week %d - Grade %d (%s)\n", s.Week, p.Grade, p.Stage)
	fmt.Fprintf(&b, "%s of %s, age %d\n", p.Name, p.Hometown, p.Age)
	fmt.Fprintf(&b, "Weight Class: %d | Fatigue: %d | Injury Risk: %d%%\n",
		p.WeightClass, p.Fatigue, p.InjuryRisk)
	fmt.Fprintf(&b, "Strength: %d  Technique: %d  Speed: %d\n",
		p.Stats.Strength, p.Stats.Technique, p.Stats.Speed)
	fmt.Fprintf(&b, "Stamina: %d  Mentality: %d  Toughness: %d\n",
		p.Stats.Stamina, p.Stats.Mentality, p.Stats.Toughness)
	money.Fprintf(&b, "Money: $%d | Record: %d-%d | Confidence: %d\n",
		p.Money, p.Wins, p.Losses, p.Stats.Confidence)
	fmt.Fprintf(&b, "Weight Cut Pressure: %d", p.WeightCutPressure)

	if s.InSeason {
		b.WriteString("\nIn season")
		if s.PostseasonPhase != "" {
			fmt.Fprintf(&b, ", postseason: %s", s.PostseasonPhase)
		}
	}

	if len(p.Injuries) > 0 {
		names := make([]string, 0, len(p.Injuries))
		for _, injury := range p.Injuries {
			names = append(names, fmt.Sprintf("%s (%s)", injury.Name, injury.Severity))
		}
		fmt.Fprintf(&b, "\nActive injuries: %s", strings.Join(names, ", "))
	}

	if s.RecruitmentInterest != 0 {
		fmt.Fprintf(&b, "\nRecruiting interest: %d", s.RecruitmentInterest)
	}

	return b.String()
}
