package monitor

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"webwatch/internal/models"
)

func TestAlertPolicy_NoPriorAlertAlwaysFires(t *testing.T) {
	p := NewAlertPolicy(30 * time.Minute)

	assert.True(t, p.ShouldAlertNow(nil, time.Now()))
	assert.True(t, p.ShouldAlertNow(&models.WatchState{Timestamp: 100}, time.Now()))
}

func TestAlertPolicy_SuppressedWithinCooldown(t *testing.T) {
	p := NewAlertPolicy(30 * time.Minute)
	now := time.Unix(10000, 0)
	prev := &models.WatchState{LastAlertTimestamp: now.Unix()}

	assert.False(t, p.ShouldAlertNow(prev, now))
	assert.False(t, p.ShouldAlertNow(prev, now.Add(29*time.Minute)))
}

func TestAlertPolicy_FiresOnceCooldownElapsed(t *testing.T) {
	p := NewAlertPolicy(30 * time.Minute)
	now := time.Unix(10000, 0)
	prev := &models.WatchState{LastAlertTimestamp: now.Unix()}

	assert.True(t, p.ShouldAlertNow(prev, now.Add(30*time.Minute)))
	assert.True(t, p.ShouldAlertNow(prev, now.Add(24*time.Hour)))
}

func TestAlertPolicy_ZeroCooldownAlwaysFires(t *testing.T) {
	p := NewAlertPolicy(0)
	now := time.Now()
	prev := &models.WatchState{LastAlertTimestamp: now.Unix()}

	assert.True(t, p.ShouldAlertNow(prev, now))
}
