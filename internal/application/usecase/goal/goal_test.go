package goal

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/habit-tracker/backend/internal/application/adapter"
	"github.com/habit-tracker/backend/internal/domain/entity"
	domainerror "github.com/habit-tracker/backend/internal/domain/error"
)

type fixedClock struct{ now time.Time }

func (c *fixedClock) Now() time.Time { return c.now }

// fakeSnapshots keeps goal boards in memory; other collections are unused here.
type fakeSnapshots struct {
	adapter.SnapshotRepository
	boards  map[uuid.UUID]*entity.GoalBoard
	saves   int
	loadErr error
	saveErr error
}

func newFakeSnapshots() *fakeSnapshots {
	return &fakeSnapshots{boards: map[uuid.UUID]*entity.GoalBoard{}}
}

func (f *fakeSnapshots) LoadGoals(_ context.Context, userID uuid.UUID) (*entity.GoalBoard, error) {
	if f.loadErr != nil {
		return nil, f.loadErr
	}
	if board, ok := f.boards[userID]; ok {
		return board, nil
	}
	return entity.NewGoalBoard(), nil
}

func (f *fakeSnapshots) SaveGoals(_ context.Context, userID uuid.UUID, board *entity.GoalBoard) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.saves++
	f.boards[userID] = board
	return nil
}

type recordingNotifier struct {
	received []entity.GoalNotification
}

func (n *recordingNotifier) Notify(_ context.Context, _ uuid.UUID, notifications []entity.GoalNotification) {
	n.received = append(n.received, notifications...)
}

func goalCode(t *testing.T, err error) domainerror.GoalErrorCode {
	t.Helper()
	var goalErr *domainerror.GoalError
	if !errors.As(err, &goalErr) {
		t.Fatalf("expected GoalError, got %v", err)
	}
	return goalErr.Code
}

func TestCreateGoalUseCase(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	userID := uuid.New()

	t.Run("persists the new goal", func(t *testing.T) {
		snapshots := newFakeSnapshots()
		uc := NewCreateGoalUseCase(snapshots, clock)

		output, err := uc.Execute(ctx, CreateGoalInput{UserID: userID, Title: "Run", TargetValue: 100, Unit: "km", Deadline: "2025-06-30"})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if snapshots.saves != 1 {
			t.Errorf("expected 1 save, got %d", snapshots.saves)
		}
		if entity.DateKey(output.Goal.Deadline) != "2025-06-30" {
			t.Errorf("expected deadline 2025-06-30, got %s", entity.DateKey(output.Goal.Deadline))
		}
	})

	t.Run("invalid deadline", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeSnapshots(), clock)
		_, err := uc.Execute(ctx, CreateGoalInput{UserID: userID, Title: "Run", TargetValue: 100, Unit: "km", Deadline: "30/06/2025"})
		if code := goalCode(t, err); code != domainerror.ErrCodeInvalidGoalDate {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidGoalDate, code)
		}
	})

	t.Run("missing deadline", func(t *testing.T) {
		uc := NewCreateGoalUseCase(newFakeSnapshots(), clock)
		_, err := uc.Execute(ctx, CreateGoalInput{UserID: userID, Title: "Run", TargetValue: 100, Unit: "km"})
		if code := goalCode(t, err); code != domainerror.ErrCodeMissingGoalFields {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeMissingGoalFields, code)
		}
	})

	t.Run("write failures surface as persistence errors", func(t *testing.T) {
		snapshots := newFakeSnapshots()
		snapshots.saveErr = errors.New("disk full")
		uc := NewCreateGoalUseCase(snapshots, clock)

		_, err := uc.Execute(ctx, CreateGoalInput{UserID: userID, Title: "Run", TargetValue: 100, Unit: "km", Deadline: "2025-06-30"})
		var persistenceErr *domainerror.PersistenceError
		if !errors.As(err, &persistenceErr) {
			t.Fatalf("expected PersistenceError, got %v", err)
		}
		if persistenceErr.Code != domainerror.ErrCodeSnapshotWrite {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeSnapshotWrite, persistenceErr.Code)
		}
	})
}

func TestUpdateProgressUseCase(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	userID := uuid.New()
	snapshots := newFakeSnapshots()
	notifier := &recordingNotifier{}

	created, err := NewCreateGoalUseCase(snapshots, clock).Execute(ctx, CreateGoalInput{
		UserID: userID, Title: "Run", TargetValue: 100, Unit: "km", Deadline: "2025-06-30",
	})
	if err != nil {
		t.Fatalf("failed to create goal: %v", err)
	}
	uc := NewUpdateProgressUseCase(snapshots, notifier, clock)

	t.Run("below target does not notify", func(t *testing.T) {
		output, err := uc.Execute(ctx, UpdateProgressInput{UserID: userID, GoalID: created.Goal.ID, CurrentValue: 40})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Completed != nil || len(notifier.received) != 0 {
			t.Errorf("expected no notification, got %v", notifier.received)
		}
	})

	t.Run("reaching the target notifies once", func(t *testing.T) {
		output, err := uc.Execute(ctx, UpdateProgressInput{UserID: userID, GoalID: created.Goal.ID, CurrentValue: 100})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Completed == nil {
			t.Fatal("expected completion in output")
		}
		if len(notifier.received) != 1 {
			t.Errorf("expected 1 notification, got %d", len(notifier.received))
		}
	})

	t.Run("unknown goal", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateProgressInput{UserID: userID, GoalID: uuid.New(), CurrentValue: 1})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})

	t.Run("negative value", func(t *testing.T) {
		_, err := uc.Execute(ctx, UpdateProgressInput{UserID: userID, GoalID: created.Goal.ID, CurrentValue: -1})
		if code := goalCode(t, err); code != domainerror.ErrCodeInvalidCurrentValue {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidCurrentValue, code)
		}
	})
}

func TestListGoalsUseCase_ExpirySweep(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	userID := uuid.New()
	snapshots := newFakeSnapshots()
	notifier := &recordingNotifier{}

	create := NewCreateGoalUseCase(snapshots, clock)
	_, _ = create.Execute(ctx, CreateGoalInput{UserID: userID, Title: "Today", TargetValue: 5, Unit: "x", Deadline: "2025-03-10"})
	_, _ = create.Execute(ctx, CreateGoalInput{UserID: userID, Title: "Later", TargetValue: 5, Unit: "x", Deadline: "2025-04-10"})
	savesBefore := snapshots.saves

	uc := NewListGoalsUseCase(snapshots, notifier, clock)

	t.Run("nothing expires on the deadline day", func(t *testing.T) {
		output, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Goals) != 2 {
			t.Errorf("expected 2 goals, got %d", len(output.Goals))
		}
		if snapshots.saves != savesBefore {
			t.Error("expected no write when nothing expired")
		}
	})

	t.Run("expired goals are removed and persisted", func(t *testing.T) {
		clock.now = clock.now.AddDate(0, 0, 1)
		output, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if len(output.Goals) != 1 || output.Goals[0].Title != "Later" {
			t.Errorf("expected only Later to remain, got %v", output.Goals)
		}
		if len(output.Notifications) != 1 || len(notifier.received) != 1 {
			t.Errorf("expected 1 notification, got %d/%d", len(output.Notifications), len(notifier.received))
		}
		if snapshots.saves != savesBefore+1 {
			t.Errorf("expected 1 additional save, got %d", snapshots.saves-savesBefore)
		}
	})

	t.Run("read failures surface as persistence errors", func(t *testing.T) {
		snapshots.loadErr = errors.New("corrupt")
		defer func() { snapshots.loadErr = nil }()

		_, err := uc.Execute(ctx, ListGoalsInput{UserID: userID})
		var persistenceErr *domainerror.PersistenceError
		if !errors.As(err, &persistenceErr) || persistenceErr.Code != domainerror.ErrCodeSnapshotRead {
			t.Errorf("expected snapshot read error, got %v", err)
		}
	})
}

func TestHierarchyUseCases(t *testing.T) {
	ctx := context.Background()
	clock := &fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	userID := uuid.New()
	snapshots := newFakeSnapshots()

	big, _ := NewCreateGoalUseCase(snapshots, clock).Execute(ctx, CreateGoalInput{
		UserID: userID, Title: "Spanish", TargetValue: 100, Unit: "lessons", Deadline: "2025-09-30",
	})

	monthly, err := NewAddMonthlyGoalUseCase(snapshots, clock).Execute(ctx, AddMilestoneInput{
		UserID: userID, ParentID: big.Goal.ID, Title: "Unit 1", TargetDate: "2025-03-31",
	})
	if err != nil {
		t.Fatalf("failed to add monthly goal: %v", err)
	}
	weekly, err := NewAddWeeklyGoalUseCase(snapshots, clock).Execute(ctx, AddMilestoneInput{
		UserID: userID, ParentID: monthly.MonthlyGoal.ID, Title: "Week 1", TargetDate: "2025-03-16",
	})
	if err != nil {
		t.Fatalf("failed to add weekly goal: %v", err)
	}
	task, err := NewAddDailyTaskUseCase(snapshots, clock).Execute(ctx, AddDailyTaskInput{
		UserID: userID, WeeklyGoalID: weekly.WeeklyGoal.ID, Title: "Flashcards",
	})
	if err != nil {
		t.Fatalf("failed to add daily task: %v", err)
	}

	t.Run("unknown parent is not found", func(t *testing.T) {
		_, err := NewAddWeeklyGoalUseCase(snapshots, clock).Execute(ctx, AddMilestoneInput{
			UserID: userID, ParentID: uuid.New(), Title: "Orphan", TargetDate: "2025-03-16",
		})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})

	t.Run("toggle reaches every level", func(t *testing.T) {
		toggle := NewToggleUseCase(snapshots)

		out, err := toggle.Execute(ctx, ToggleInput{UserID: userID, Target: ToggleDailyTask, ID: task.Task.ID})
		if err != nil || out.DailyTask == nil || !out.DailyTask.Completed {
			t.Errorf("expected completed daily task, got %+v (err %v)", out, err)
		}
		out, err = toggle.Execute(ctx, ToggleInput{UserID: userID, Target: ToggleWeeklyGoal, ID: weekly.WeeklyGoal.ID})
		if err != nil || out.WeeklyGoal == nil || !out.WeeklyGoal.Completed {
			t.Errorf("expected completed weekly goal, got %+v (err %v)", out, err)
		}
		out, err = toggle.Execute(ctx, ToggleInput{UserID: userID, Target: ToggleMonthlyGoal, ID: monthly.MonthlyGoal.ID})
		if err != nil || out.MonthlyGoal == nil || !out.MonthlyGoal.Completed {
			t.Errorf("expected completed monthly goal, got %+v (err %v)", out, err)
		}

		_, err = toggle.Execute(ctx, ToggleInput{UserID: userID, Target: ToggleDailyTask, ID: uuid.New()})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})

	t.Run("today's tasks follow the clock", func(t *testing.T) {
		list := NewListTodayTasksUseCase(snapshots, clock)
		output, err := list.Execute(ctx, ListTodayTasksInput{UserID: userID})
		if err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		if output.Date != "2025-03-10" || len(output.Tasks) != 1 {
			t.Errorf("expected 1 task on 2025-03-10, got %d on %s", len(output.Tasks), output.Date)
		}

		tomorrow := &fixedClock{now: clock.now.AddDate(0, 0, 1)}
		output, _ = NewListTodayTasksUseCase(snapshots, tomorrow).Execute(ctx, ListTodayTasksInput{UserID: userID})
		if len(output.Tasks) != 0 {
			t.Errorf("expected no tasks tomorrow, got %d", len(output.Tasks))
		}
	})

	t.Run("delete removes the subtree", func(t *testing.T) {
		del := NewDeleteGoalUseCase(snapshots)
		if err := del.Execute(ctx, DeleteGoalInput{UserID: userID, GoalID: big.Goal.ID}); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
		err := del.Execute(ctx, DeleteGoalInput{UserID: userID, GoalID: big.Goal.ID})
		if code := goalCode(t, err); code != domainerror.ErrCodeGoalNotFound {
			t.Errorf("expected code %s, got %s", domainerror.ErrCodeGoalNotFound, code)
		}
	})
}
