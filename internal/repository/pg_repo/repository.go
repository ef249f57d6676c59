package pg_repo

import (
	"context"
	"errors"
	"time"
	"virtual_casino/internal/model"
	"virtual_casino/internal/repository"

	sq "github.com/Masterminds/squirrel"
	trmpgx "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/avito-tech/go-transaction-manager/trm/v2"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	table        = "casino_state"
	colProfile   = "profile"
	colBalance   = "balance"
	colTotalWon  = "total_won"
	colTotalLost = "total_lost"
	colTheme     = "theme"

	savesTable = "casino_state_saves"
	colSaveID  = "save_id"
	colSavedAt = "saved_at"
)

// Schema Таблицы, которые нужны репозиторию
const Schema = `
CREATE TABLE IF NOT EXISTS casino_state (
	profile    TEXT PRIMARY KEY,
	balance    BIGINT,
	total_won  BIGINT,
	total_lost BIGINT,
	theme      TEXT
);
CREATE TABLE IF NOT EXISTS casino_state_saves (
	save_id    UUID PRIMARY KEY,
	profile    TEXT NOT NULL,
	balance    BIGINT NOT NULL,
	total_won  BIGINT NOT NULL,
	total_lost BIGINT NOT NULL,
	theme      TEXT NOT NULL,
	saved_at   TIMESTAMPTZ NOT NULL
);`

type repo struct {
	dbc       *pgxpool.Pool
	getter    *trmpgx.CtxGetter
	txManager trm.Manager
	profile   string
}

func NewStateRepository(dbc *pgxpool.Pool, txManager trm.Manager, profile string) repository.StateRepository {
	return &repo{
		dbc:       dbc,
		getter:    trmpgx.DefaultCtxGetter,
		txManager: txManager,
		profile:   profile,
	}
}

// EnsureSchema - создает таблицы, если их нет
func EnsureSchema(ctx context.Context, dbc *pgxpool.Pool) error {
	_, err := dbc.Exec(ctx, Schema)
	return err
}

// GetState - получение состояния профиля.
// Возвращает repository.ErrStateNotFound, если записи нет
func (r *repo) GetState(ctx context.Context) (*repository.StateRecord, error) {
	// Формируем запрос
	query := sq.Select(colBalance, colTotalWon, colTotalLost, colTheme).
		From(table).
		Where(sq.Eq{colProfile: r.profile}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return nil, err
	}

	var (
		balance, won, lost *int64
		theme              *string
	)
	err = r.getter.DefaultTrOrDB(ctx, r.dbc).QueryRow(ctx, sqlStr, args...).Scan(&balance, &won, &lost, &theme)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrStateNotFound
		}
		return nil, err
	}

	return &repository.StateRecord{
		Balance:   toInt(balance),
		TotalWon:  toInt(won),
		TotalLost: toInt(lost),
		Theme:     theme,
	}, nil
}

// SaveState - обновляет состояние профиля и пишет запись в журнал сохранений.
// Обе операции выполняются в одной транзакции
func (r *repo) SaveState(ctx context.Context, state model.PersistedState) error {
	return r.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := r.upsertState(txCtx, state); err != nil {
			return err
		}
		return r.insertSave(txCtx, state)
	})
}

func (r *repo) upsertState(ctx context.Context, state model.PersistedState) error {
	conn := r.getter.DefaultTrOrDB(ctx, r.dbc)

	// Формируем запрос
	query := sq.Update(table).
		Set(colBalance, int64(state.Balance)).
		Set(colTotalWon, int64(state.TotalWon)).
		Set(colTotalLost, int64(state.TotalLost)).
		Set(colTheme, string(state.Theme)).
		Where(sq.Eq{colProfile: r.profile}).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	res, err := conn.Exec(ctx, sqlStr, args...)
	if err != nil {
		return err
	}

	// Если rowsAffected = 0 - то записи не существует и делаем вставку
	if res.RowsAffected() == 0 {
		insertQuery := sq.Insert(table).
			Columns(colProfile, colBalance, colTotalWon, colTotalLost, colTheme).
			Values(r.profile, int64(state.Balance), int64(state.TotalWon), int64(state.TotalLost), string(state.Theme)).
			PlaceholderFormat(sq.Dollar)

		sqlStr, args, err = insertQuery.ToSql()
		if err != nil {
			return err
		}

		if _, err = conn.Exec(ctx, sqlStr, args...); err != nil {
			return err
		}
	}
	return nil
}

func (r *repo) insertSave(ctx context.Context, state model.PersistedState) error {
	query := sq.Insert(savesTable).
		Columns(colSaveID, colProfile, colBalance, colTotalWon, colTotalLost, colTheme, colSavedAt).
		Values(uuid.New().String(), r.profile, int64(state.Balance), int64(state.TotalWon), int64(state.TotalLost), string(state.Theme), time.Now().UTC()).
		PlaceholderFormat(sq.Dollar)

	sqlStr, args, err := query.ToSql()
	if err != nil {
		return err
	}

	_, err = r.getter.DefaultTrOrDB(ctx, r.dbc).Exec(ctx, sqlStr, args...)
	return err
}

func toInt(v *int64) *int {
	if v == nil {
		return nil
	}
	n := int(*v)
	return &n
}
