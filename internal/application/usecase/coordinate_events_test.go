package usecase_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/duskd/internal/application/port"
	"github.com/bnema/duskd/internal/application/port/mocks"
	"github.com/bnema/duskd/internal/application/usecase"
	"github.com/bnema/duskd/internal/domain/entity"
	"github.com/bnema/duskd/internal/domain/service"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const (
	modernBuild = 255
	legacyBuild = 200
	minBuild    = 209
)

var (
	batterySource = entity.NewSwitchContext(entity.SwitchSourceBatteryStatusChanged)
	unlockSource  = entity.NewSwitchContext(entity.SwitchSourceSystemUnlock)
	resumeSource  = entity.NewSwitchContext(entity.SwitchSourceSystemResume)
)

type coordinatorFixture struct {
	uc        *usecase.CoordinateEventsUseCase
	platform  *fakePlatform
	switcher  *mocks.MockThemeSwitcher
	postponer *service.PostponeManager
}

func newCoordinatorFixture(t *testing.T, build int) *coordinatorFixture {
	t.Helper()

	platform := newFakePlatform(build)
	switcher := mocks.NewMockThemeSwitcher(t)
	postponer := service.NewPostponeManager()

	uc := usecase.NewCoordinateEventsUseCase(usecase.CoordinateEventsConfig{
		Switcher:              switcher,
		Postponer:             postponer,
		Battery:               platform,
		Session:               platform,
		Probe:                 platform,
		SessionSwitchMinBuild: minBuild,
	})

	return &coordinatorFixture{
		uc:        uc,
		platform:  platform,
		switcher:  switcher,
		postponer: postponer,
	}
}

func (f *coordinatorFixture) start(t *testing.T) func() {
	return startLoop(t, f.uc.Run, f.uc.Stop)
}

func TestCoordinateEvents_RegisterThemeEvent_Idempotent(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, batterySource).Return(nil).Once()

	for i := 0; i < 3; i++ {
		require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	}
	assert.Equal(t, 1, f.platform.batterySubscribes)
	assert.True(t, f.uc.ThemeEventEnabled())

	stop := f.start(t)
	f.platform.fireBattery()
	stop()
}

func TestCoordinateEvents_DeregisterThemeEvent_NeverRegistered(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	stop := f.start(t)
	require.NoError(t, f.uc.DeregisterThemeEvent(ctx))
	require.NoError(t, f.uc.DeregisterThemeEvent(ctx))
	stop()

	assert.Zero(t, f.platform.batteryUnsubscribes)
	assert.False(t, f.uc.ThemeEventEnabled())
}

func TestCoordinateEvents_BatteryOffline_ForcesDark(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)
	f.platform.setStatus(entity.PowerLineOffline)

	f.switcher.EXPECT().UpdateTheme(mock.Anything, entity.ThemeDark, batterySource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	stop := f.start(t)
	f.platform.fireBattery()
	stop()

	f.switcher.AssertNotCalled(t, "RequestSwitch", mock.Anything, mock.Anything)
}

func TestCoordinateEvents_BatteryOnline_RequestsSwitch(t *testing.T) {
	tests := []struct {
		name   string
		status entity.PowerLineStatus
	}{
		{name: "online", status: entity.PowerLineOnline},
		{name: "unknown", status: entity.PowerLineUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newCoordinatorFixture(t, modernBuild)
			f.platform.setStatus(tt.status)

			f.switcher.EXPECT().RequestSwitch(mock.Anything, batterySource).Return(nil).Once()

			require.NoError(t, f.uc.RegisterThemeEvent(ctx))
			stop := f.start(t)
			f.platform.fireBattery()
			stop()

			f.switcher.AssertNotCalled(t, "UpdateTheme", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestCoordinateEvents_DeregisterThemeEvent_FinalReevaluation(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, batterySource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	stop := f.start(t)
	require.NoError(t, f.uc.DeregisterThemeEvent(ctx))
	stop()

	assert.Equal(t, 1, f.platform.batteryUnsubscribes)
	assert.Nil(t, f.platform.batteryHandler)
	assert.False(t, f.uc.ThemeEventEnabled())
}

func TestCoordinateEvents_DeregisterThemeEvent_FailureResetsFlag(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	// One final re-evaluation on deregistration, none on the second register.
	f.switcher.EXPECT().RequestSwitch(mock.Anything, batterySource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	f.platform.failNextUnsubscribe = true

	stop := f.start(t)
	err := f.uc.DeregisterThemeEvent(ctx)
	require.ErrorIs(t, err, usecase.ErrDeregister)
	require.ErrorIs(t, err, port.ErrNotSubscribed)
	assert.False(t, f.uc.ThemeEventEnabled())

	// The platform kept the stale handler; registering again must recover.
	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	assert.True(t, f.uc.ThemeEventEnabled())
	assert.Equal(t, 2, f.platform.batterySubscribes)
	stop()
}

func TestCoordinateEvents_ThemeEvent_RoundTrip(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	// Deregistration re-evaluates once; the notification after re-registering once more.
	f.switcher.EXPECT().RequestSwitch(mock.Anything, batterySource).Return(nil).Times(2)

	stop := f.start(t)
	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	require.NoError(t, f.uc.DeregisterThemeEvent(ctx))
	require.NoError(t, f.uc.RegisterThemeEvent(ctx))

	assert.True(t, f.uc.ThemeEventEnabled())
	assert.NotNil(t, f.platform.batteryHandler)
	assert.Equal(t, 2, f.platform.batterySubscribes)
	assert.Equal(t, 1, f.platform.batteryUnsubscribes)

	f.platform.fireBattery()
	stop()
}

func TestCoordinateEvents_LateBatteryEvent_DoesNotForceDark(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)
	f.platform.setStatus(entity.PowerLineOffline)

	// Final re-evaluation plus the stale notification downgraded to a request.
	f.switcher.EXPECT().RequestSwitch(mock.Anything, batterySource).Return(nil).Times(2)

	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	stale := f.platform.batteryHandler

	stop := f.start(t)
	require.NoError(t, f.uc.DeregisterThemeEvent(ctx))
	stale()
	stop()

	f.switcher.AssertNotCalled(t, "UpdateTheme", mock.Anything, mock.Anything, mock.Anything)
}

func TestCoordinateEvents_RegisterResumeEvent_SelectsStrategy(t *testing.T) {
	tests := []struct {
		name  string
		build int
		want  entity.ResumeStrategy
	}{
		{name: "modern", build: modernBuild, want: entity.ResumeStrategyModern},
		{name: "threshold", build: minBuild, want: entity.ResumeStrategyModern},
		{name: "legacy", build: legacyBuild, want: entity.ResumeStrategyLegacy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newCoordinatorFixture(t, tt.build)

			require.NoError(t, f.uc.RegisterResumeEvent(ctx))
			require.NoError(t, f.uc.RegisterResumeEvent(ctx))

			assert.Equal(t, tt.want, f.uc.ResumeStrategy())
			if tt.want == entity.ResumeStrategyModern {
				assert.Equal(t, 1, f.platform.sessionSubscribes)
				assert.Zero(t, f.platform.powerModeSubscribes)
			} else {
				assert.Equal(t, 1, f.platform.powerModeSubscribes)
				assert.Zero(t, f.platform.sessionSubscribes)
			}
		})
	}
}

func TestCoordinateEvents_RegisterResumeEvent_ProbeFailureFallsBack(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)
	f.platform.buildErr = assert.AnError

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))

	assert.Equal(t, entity.ResumeStrategyLegacy, f.uc.ResumeStrategy())
	assert.Equal(t, 1, f.platform.powerModeSubscribes)
}

func TestCoordinateEvents_SessionLockUnlock(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, unlockSource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	stop := f.start(t)

	f.platform.fireSession(entity.SessionSwitchLock)
	assert.Eventually(t, func() bool {
		return f.postponer.Contains(entity.PostponeSessionLock)
	}, timeout, tick)
	assert.Equal(t, []entity.PostponeKey{entity.PostponeSessionLock}, f.postponer.Keys())

	f.platform.fireSession(entity.SessionSwitchUnlock)
	stop()

	assert.Empty(t, f.postponer.Keys())
}

func TestCoordinateEvents_SessionLockTracksLastNotification(t *testing.T) {
	sequences := []struct {
		name    string
		reasons []entity.SessionSwitchReason
		locked  bool
	}{
		{name: "lock", reasons: []entity.SessionSwitchReason{entity.SessionSwitchLock}, locked: true},
		{name: "lock lock", reasons: []entity.SessionSwitchReason{entity.SessionSwitchLock, entity.SessionSwitchLock}, locked: true},
		{name: "unlock", reasons: []entity.SessionSwitchReason{entity.SessionSwitchUnlock}, locked: false},
		{name: "lock unlock lock", reasons: []entity.SessionSwitchReason{
			entity.SessionSwitchLock, entity.SessionSwitchUnlock, entity.SessionSwitchLock,
		}, locked: true},
		{name: "lock unlock unlock", reasons: []entity.SessionSwitchReason{
			entity.SessionSwitchLock, entity.SessionSwitchUnlock, entity.SessionSwitchUnlock,
		}, locked: false},
	}

	for _, tt := range sequences {
		t.Run(tt.name, func(t *testing.T) {
			ctx := testContext()
			f := newCoordinatorFixture(t, modernBuild)
			f.switcher.EXPECT().RequestSwitch(mock.Anything, unlockSource).Return(nil).Maybe()

			require.NoError(t, f.uc.RegisterResumeEvent(ctx))
			stop := f.start(t)
			for _, reason := range tt.reasons {
				f.platform.fireSession(reason)
			}
			stop()

			assert.Equal(t, tt.locked, f.postponer.Contains(entity.PostponeSessionLock))
		})
	}
}

func TestCoordinateEvents_LegacyResume(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, legacyBuild)
	f.postponer.Add("Fullscreen")

	f.switcher.EXPECT().RequestSwitch(mock.Anything, resumeSource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	stop := f.start(t)
	f.platform.firePowerMode(entity.PowerModeSuspend)
	f.platform.firePowerMode(entity.PowerModeResume)
	stop()

	assert.Equal(t, []entity.PostponeKey{"Fullscreen"}, f.postponer.Keys())
}

func TestCoordinateEvents_DeregisterResumeEvent_ModernUnsubscribes(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	require.NoError(t, f.uc.DeregisterResumeEvent(ctx))

	// The handler must be detached, not attached a second time.
	assert.Equal(t, 1, f.platform.sessionSubscribes)
	assert.Equal(t, 1, f.platform.sessionUnsubscribes)
	assert.Nil(t, f.platform.sessionHandler)
	assert.False(t, f.uc.ResumeEventEnabled())
	assert.Equal(t, entity.ResumeStrategyNone, f.uc.ResumeStrategy())

	require.NoError(t, f.uc.DeregisterResumeEvent(ctx))
	assert.Equal(t, 1, f.platform.sessionUnsubscribes)
}

func TestCoordinateEvents_DeregisterResumeEvent_LegacyUnsubscribes(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, legacyBuild)

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	require.NoError(t, f.uc.DeregisterResumeEvent(ctx))

	assert.Equal(t, 1, f.platform.powerModeUnsubscribes)
	assert.Zero(t, f.platform.sessionUnsubscribes)
	assert.Nil(t, f.platform.powerModeHandler)
}

func TestCoordinateEvents_DeregisterResumeEvent_UsesRegisteredStrategy(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	// A threshold change only affects the next registration.
	f.uc.SetSessionSwitchMinBuild(modernBuild + 1)
	require.NoError(t, f.uc.DeregisterResumeEvent(ctx))

	assert.Equal(t, 1, f.platform.sessionUnsubscribes)
	assert.Zero(t, f.platform.powerModeUnsubscribes)

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	assert.Equal(t, entity.ResumeStrategyLegacy, f.uc.ResumeStrategy())
}

func TestCoordinateEvents_DeregisterResumeEvent_FailureResetsFlag(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, legacyBuild)

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	f.platform.failNextUnsubscribe = true

	err := f.uc.DeregisterResumeEvent(ctx)
	require.ErrorIs(t, err, usecase.ErrDeregister)
	require.ErrorIs(t, err, port.ErrNotSubscribed)
	assert.False(t, f.uc.ResumeEventEnabled())

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	assert.True(t, f.uc.ResumeEventEnabled())
}

func TestCoordinateEvents_DeregisterResumeEvent_ReleasesSessionLock(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, unlockSource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	stop := f.start(t)
	f.platform.fireSession(entity.SessionSwitchLock)
	assert.Eventually(t, func() bool {
		return f.postponer.Contains(entity.PostponeSessionLock)
	}, timeout, tick)

	require.NoError(t, f.uc.DeregisterResumeEvent(ctx))
	stop()

	assert.False(t, f.postponer.IsPostponed())
}

func TestCoordinateEvents_LateSessionLock_DoesNotPostpone(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, unlockSource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	stale := f.platform.sessionHandler
	require.NoError(t, f.uc.DeregisterResumeEvent(ctx))

	stop := f.start(t)
	stale(entity.SessionSwitchLock)
	stop()

	assert.False(t, f.postponer.IsPostponed())
}

func TestCoordinateEvents_FamiliesAreIndependent(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, batterySource).Return(nil).Once()

	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	require.NoError(t, f.uc.RegisterResumeEvent(ctx))

	stop := f.start(t)
	require.NoError(t, f.uc.DeregisterThemeEvent(ctx))
	stop()

	assert.True(t, f.uc.ResumeEventEnabled())
	assert.NotNil(t, f.platform.sessionHandler)
}

func TestCoordinateEvents_SwitchErrorDoesNotStopLoop(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, legacyBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, resumeSource).Return(assert.AnError).Times(2)

	require.NoError(t, f.uc.RegisterResumeEvent(ctx))
	stop := f.start(t)
	f.platform.firePowerMode(entity.PowerModeResume)
	f.platform.firePowerMode(entity.PowerModeResume)
	stop()
}

func TestCoordinateEvents_RunTwice(t *testing.T) {
	f := newCoordinatorFixture(t, modernBuild)

	processed := make(chan struct{})
	f.switcher.EXPECT().
		RequestSwitch(mock.Anything, entity.NewSwitchContext(entity.SwitchSourceManual)).
		Run(func(_ context.Context, _ entity.SwitchContext) { close(processed) }).
		Return(nil).
		Once()

	stop := f.start(t)
	f.uc.RequestSwitch(entity.SwitchSourceManual)
	select {
	case <-processed:
	case <-time.After(timeout):
		t.Fatal("request was not processed")
	}

	require.ErrorIs(t, f.uc.Run(testContext()), usecase.ErrCoordinatorRunning)
	stop()

	// Posting after the loop exited must not block.
	f.uc.RequestSwitch(entity.SwitchSourceStartup)
	<-f.uc.Done()
}

func TestCoordinateEvents_ConcurrentRegistration(t *testing.T) {
	ctx := testContext()
	f := newCoordinatorFixture(t, modernBuild)

	f.switcher.EXPECT().RequestSwitch(mock.Anything, mock.Anything).Return(nil).Maybe()
	f.switcher.EXPECT().UpdateTheme(mock.Anything, mock.Anything, mock.Anything).Return(nil).Maybe()

	stop := f.start(t)
	defer stop()

	const workers = 8
	const rounds = 50

	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				switch (w + i) % 4 {
				case 0:
					assert.NoError(t, f.uc.RegisterThemeEvent(ctx))
					assert.NoError(t, f.uc.RegisterResumeEvent(ctx))
				case 1:
					assert.NoError(t, f.uc.DeregisterThemeEvent(ctx))
					assert.NoError(t, f.uc.DeregisterResumeEvent(ctx))
				case 2:
					f.platform.fireBattery()
					f.platform.fireSession(entity.SessionSwitchLock)
				default:
					f.platform.fireSession(entity.SessionSwitchUnlock)
					_ = f.uc.ThemeEventEnabled()
					_ = f.uc.ResumeEventEnabled()
				}
			}
		}(w)
	}
	wg.Wait()

	require.NoError(t, f.uc.RegisterThemeEvent(ctx))
	require.NoError(t, f.uc.RegisterResumeEvent(ctx))

	f.platform.mu.Lock()
	assert.Zero(t, f.platform.conflicts)
	assert.NotNil(t, f.platform.batteryHandler)
	assert.NotNil(t, f.platform.sessionHandler)
	assert.Equal(t, 1, f.platform.batterySubscribes-f.platform.batteryUnsubscribes)
	assert.Equal(t, 1, f.platform.sessionSubscribes-f.platform.sessionUnsubscribes)
	assert.Zero(t, f.platform.powerModeSubscribes)
	f.platform.mu.Unlock()

	require.NoError(t, f.uc.DeregisterThemeEvent(ctx))
	require.NoError(t, f.uc.DeregisterResumeEvent(ctx))
	assert.False(t, f.uc.ThemeEventEnabled())
	assert.False(t, f.uc.ResumeEventEnabled())
	assert.Zero(t, f.platform.conflictCount())

	f.platform.mu.Lock()
	defer f.platform.mu.Unlock()
	assert.Nil(t, f.platform.batteryHandler)
	assert.Nil(t, f.platform.sessionHandler)
	assert.Equal(t, f.platform.batterySubscribes, f.platform.batteryUnsubscribes)
	assert.Equal(t, f.platform.sessionSubscribes, f.platform.sessionUnsubscribes)
}
