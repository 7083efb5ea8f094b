package steps

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"github.com/cucumber/godog"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/habit-tracker/backend/internal/domain/entity"
	"github.com/habit-tracker/backend/internal/integration/persistence/model"
)

const defaultPassword = "DefaultPass123"

func (t *testContext) theCurrentTimeIs(value string) error {
	current, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return fmt.Errorf("invalid time %q: %w", value, err)
	}
	t.timeMock.SetCurrentTime(current)
	return nil
}

func (t *testContext) aUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPassword, entity.TierFree)
}

func (t *testContext) aUserExistsWithEmailAndPassword(email, password string) error {
	return t.createUser(email, password, entity.TierFree)
}

func (t *testContext) aPremiumUserExistsWithEmail(email string) error {
	return t.createUser(email, defaultPassword, entity.TierPremium)
}

func (t *testContext) createUser(email, password string, tier entity.Tier) error {
	userID := uuid.New()
	t.currentUserID = userID

	now := time.Now().UTC()
	user := &model.UserModel{
		ID:                 userID,
		Email:              email,
		Name:               "Test User",
		PasswordHash:       hashPassword(password),
		Tier:               string(tier),
		EmailNotifications: true,
		TermsAcceptedAt:    now,
		CreatedAt:          now,
		UpdatedAt:          now,
	}

	return t.db.DbConn.Create(user).Error
}

func hashPassword(password string) string {
	hashedBytes, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(fmt.Sprintf("failed to hash password: %v", err))
	}
	return string(hashedBytes)
}

// iAmLoggedInAs creates the user when missing and logs in through the API.
func (t *testContext) iAmLoggedInAs(email string) error {
	var user model.UserModel
	err := t.db.DbConn.Where("email = ?", email).First(&user).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		if err := t.aUserExistsWithEmail(email); err != nil {
			return err
		}
	case err != nil:
		return err
	default:
		t.currentUserID = user.ID
	}

	payload, err := json.Marshal(map[string]string{"email": email, "password": defaultPassword})
	if err != nil {
		return err
	}
	if err := t.executeRequest("POST", "/api/v1/auth/login", payload); err != nil {
		return err
	}
	if t.response.status != 200 {
		return fmt.Errorf("login as %s failed with status %d: %v", email, t.response.status, t.response.body)
	}
	t.response = nil
	return nil
}

func (t *testContext) theDbShouldContainObjectsInTheTable(quantity int, table string) error {
	if tableModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(tableModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		result := t.db.DbConn.Unscoped().Find(entitySlicePtr.Interface())
		if result.Error != nil {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s', got %d", quantity, table, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theDbShouldContainObjectsInWithTheValues(quantity int, table string, content *godog.DocString) error {
	var criteria map[string]any
	if err := json.Unmarshal([]byte(t.replacePlaceholders(content.Content)), &criteria); err != nil {
		return err
	}

	if tableModel, ok := t.db.GetModel(table); ok {
		entityType := reflect.TypeOf(tableModel).Elem()
		entitySlice := reflect.MakeSlice(reflect.SliceOf(entityType), 0, 0)
		entitySlicePtr := reflect.New(entitySlice.Type())
		entitySlicePtr.Elem().Set(entitySlice)

		query := t.db.DbConn.Unscoped()
		for key, value := range criteria {
			query = query.Where(fmt.Sprintf("%s = ?", key), value)
		}

		result := query.Find(entitySlicePtr.Interface())
		if result.Error != nil && !errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return result.Error
		}

		count := entitySlicePtr.Elem().Len()
		if count != quantity {
			return fmt.Errorf("expected %d objects in '%s' with criteria %v, got %d", quantity, table, criteria, count)
		}
		return nil
	}
	return fmt.Errorf("table '%s' not found in models", table)
}

func (t *testContext) theAnalyticsCacheShouldHoldReports(quantity int) error {
	count := 0
	for _, key := range t.redis.Keys() {
		if strings.HasPrefix(key, "analytics:") {
			count++
		}
	}
	if count != quantity {
		return fmt.Errorf("expected %d cached analytics reports, got %d", quantity, count)
	}
	return nil
}
