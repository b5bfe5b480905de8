package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/paylite-hr/payroll-backend-go/internal/pkg/database"
	goredis "github.com/redis/go-redis/v9"
)

// Key layout. Bounded, enumerable record kinds live in hash namespaces
// (one round trip enumerates them); unbounded kinds live in flat
// key-per-record namespaces enumerated by prefix scan, so scan cost is
// bounded by result size.
const (
	employeeHashKey        = "payroll:employees"
	attendanceHashKey      = "payroll:attendance"
	leaveBalanceHashKey    = "payroll:leave_balances"
	salaryStructureHashKey = "payroll:salary_structures"
	deductionHashKey       = "payroll:deductions"

	leaveKeyPrefix      = "leave:"
	payrollRunKeyPrefix = "payroll-run:"
	payslipKeyPrefix    = "payslip:"
	auditLogKeyPrefix   = "audit-log:"
	userKeyPrefix       = "user:"
	userEmailKeyPrefix  = "user:email:"
)

// hashGet fetches a single hash field. An absent field is a defined
// not-found result (nil, nil), never an error.
func hashGet[T any](ctx context.Context, db *database.DB, key, field string) (*T, error) {
	val, err := db.HGet(ctx, key, field).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s/%s: %w", key, field, err)
	}

	var record T
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("failed to decode %s/%s: %w", key, field, err)
	}
	return &record, nil
}

// hashValues enumerates every record in a hash namespace.
func hashValues[T any](ctx context.Context, db *database.DB, key string) ([]T, error) {
	fields, err := db.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to enumerate %s: %w", key, err)
	}

	records := make([]T, 0, len(fields))
	for field, val := range fields {
		var record T
		if err := json.Unmarshal([]byte(val), &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s/%s: %w", key, field, err)
		}
		records = append(records, record)
	}
	return records, nil
}

// hashSet stores a record as a hash field.
func hashSet(ctx context.Context, db *database.DB, key, field string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s/%s: %w", key, field, err)
	}
	if err := db.HSet(ctx, key, field, raw).Err(); err != nil {
		return fmt.Errorf("failed to write %s/%s: %w", key, field, err)
	}
	return nil
}

// getJSON fetches a record from a flat key. Absent keys yield (nil, nil).
func getJSON[T any](ctx context.Context, db *database.DB, key string) (*T, error) {
	val, err := db.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", key, err)
	}

	var record T
	if err := json.Unmarshal([]byte(val), &record); err != nil {
		return nil, fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return &record, nil
}

// setJSON stores a record under a flat key.
func setJSON(ctx context.Context, db *database.DB, key string, record any) error {
	raw, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := db.Set(ctx, key, raw, 0).Err(); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

// scanPrefix enumerates all records under a flat key prefix: SCAN collects
// the matching keys, then one MGET batch-fetches the values.
func scanPrefix[T any](ctx context.Context, db *database.DB, prefix string) ([]T, error) {
	var keys []string
	iter := db.Scan(ctx, 0, prefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return nil, fmt.Errorf("failed to scan %s*: %w", prefix, err)
	}

	if len(keys) == 0 {
		return []T{}, nil
	}

	vals, err := db.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to batch-fetch %s*: %w", prefix, err)
	}

	records := make([]T, 0, len(vals))
	for i, val := range vals {
		raw, ok := val.(string)
		if !ok {
			// Key expired between SCAN and MGET.
			continue
		}
		var record T
		if err := json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to decode %s: %w", keys[i], err)
		}
		records = append(records, record)
	}
	return records, nil
}
