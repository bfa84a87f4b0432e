// Package notification announces computed results through whatever
// services the deployment wires in.
package notification

import (
	"context"
	"fmt"
	"strings"

	"github.com/nikoksr/notify"
	log "github.com/sirupsen/logrus"

	"github.com/MagicAardvark/race-results-sub000/pkg/awards"
	"github.com/MagicAardvark/race-results-sub000/pkg/helper"
	"github.com/MagicAardvark/race-results-sub000/pkg/results"
)

type Manager struct {
	notifier *notify.Notify
}

func NewManager(services ...notify.Notifier) *Manager {
	return &Manager{
		notifier: notify.NewWithServices(services...),
	}
}

// AnnounceResults sends the class winners for one result set.
func (m *Manager) AnnounceResults(ctx context.Context, rs results.ResultSet) error {
	lines := make([]string, 0, len(rs.Class))
	for _, cr := range rs.Class {
		if len(cr.Entries) == 0 {
			continue
		}
		winner := cr.Entries[0]
		lines = append(lines, fmt.Sprintf("%s: %s (%s)",
			cr.ShortName, winner.DriverName, helper.FormatTime(winner.IndexedTotal)))
	}

	subject := fmt.Sprintf("Results: %s", rs.EventName)
	log.Infof("announcing results for %s to %d classes", rs.EventName, len(lines))
	return m.notifier.Send(ctx, subject, strings.Join(lines, "\n"))
}

// AnnounceAwards sends the special-award winners.
func (m *Manager) AnnounceAwards(ctx context.Context, eventName string, aw awards.SpecialAwards) error {
	var lines []string
	appendWinner := func(label string, w *awards.Winner) {
		if w != nil {
			lines = append(lines, fmt.Sprintf("%s: %s #%s", label, w.DriverName, w.CarNumber))
		}
	}
	appendWinner("Cone Killer", aw.ConeKiller)
	appendWinner("Hail Mary", aw.HailMary)
	appendWinner("Consistency", aw.Consistency)
	appendWinner("Speed Demon", aw.SpeedDemon)
	for _, w := range aw.SqueakyClean {
		lines = append(lines, fmt.Sprintf("Squeaky Clean: %s #%s", w.DriverName, w.CarNumber))
	}
	if len(lines) == 0 {
		return nil
	}

	subject := fmt.Sprintf("Special awards: %s", eventName)
	return m.notifier.Send(ctx, subject, strings.Join(lines, "\n"))
}
