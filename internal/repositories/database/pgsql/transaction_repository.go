package pgsql

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/safa-edu/branch_transfer_app/internal/core/domain"
	portsrepo "github.com/safa-edu/branch_transfer_app/internal/core/ports/repositories"
	"github.com/safa-edu/branch_transfer_app/internal/models"
	"github.com/safa-edu/branch_transfer_app/internal/utils"
	"github.com/safa-edu/branch_transfer_app/internal/utils/mapping"
	"github.com/safa-edu/branch_transfer_app/internal/utils/pagination"
)

// transactionSelect is the shared projection: transaction columns plus the
// left-joined branch and staff display names. Left joins keep dangling
// references from failing the query; the names come back NULL instead.
const transactionSelect = `
	SELECT
		t.transaction_id, t.transaction_number,
		t.from_branch_id, t.to_branch_id, t.from_staff_id, t.to_staff_id,
		t.amount, t.currency, t.transfer_method,
		t.transaction_date, t.received_date, t.status,
		t.confirmation_code, t.notes, t.receipt_url, t.created_at,
		fb.name AS from_branch_name,
		tb.name AS to_branch_name,
		fs.full_name AS from_staff_name,
		ts.full_name AS to_staff_name
	FROM transactions t
	LEFT JOIN branches fb ON t.from_branch_id = fb.branch_id
	LEFT JOIN branches tb ON t.to_branch_id = tb.branch_id
	LEFT JOIN profiles fs ON t.from_staff_id = fs.staff_id
	LEFT JOIN profiles ts ON t.to_staff_id = ts.staff_id
`

// PgxTransactionRepository reads the transactions table.
type PgxTransactionRepository struct {
	BaseRepository
}

// newPgxTransactionRepository creates a new repository for transaction data.
func newPgxTransactionRepository(pool *pgxpool.Pool) portsrepo.TransactionRepository {
	return &PgxTransactionRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure PgxTransactionRepository implements portsrepo.TransactionRepository
var _ portsrepo.TransactionRepository = (*PgxTransactionRepository)(nil)

// ListForPeriod returns the transactions of one calendar month, ascending by
// date. The branch filter matches either side of the transfer.
func (r *PgxTransactionRepository) ListForPeriod(ctx context.Context, branchID *string, year, month int) ([]domain.Transaction, error) {
	start, end := utils.PeriodBounds(year, month)

	query := transactionSelect + ` WHERE t.transaction_date BETWEEN $1 AND $2`
	args := []interface{}{start, end}

	if branchID != nil {
		query += ` AND (t.from_branch_id = $3 OR t.to_branch_id = $3)`
		args = append(args, *branchID)
	}
	query += ` ORDER BY t.transaction_date ASC, t.created_at ASC`

	rows, err := r.Pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("error querying transactions for period: %w", err)
	}
	defer rows.Close()

	txns, err := scanTransactions(rows)
	if err != nil {
		return nil, err
	}
	return mapping.ToDomainTransactions(txns), nil
}

// ListTransactions returns a cursor-paginated page, newest first.
func (r *PgxTransactionRepository) ListTransactions(ctx context.Context, params portsrepo.ListTransactionsParams) ([]domain.Transaction, *string, error) {
	var sb strings.Builder
	sb.WriteString(transactionSelect)
	sb.WriteString(" WHERE 1=1")

	args := []interface{}{}
	if params.BranchID != nil {
		args = append(args, *params.BranchID)
		ph := strconv.Itoa(len(args))
		sb.WriteString(" AND (t.from_branch_id = $" + ph + " OR t.to_branch_id = $" + ph + ")")
	}
	if params.Status != nil {
		args = append(args, string(*params.Status))
		sb.WriteString(" AND t.status = $" + strconv.Itoa(len(args)))
	}
	if params.NextToken != nil {
		createdAt, id, err := pagination.DecodeToken(*params.NextToken)
		if err != nil {
			return nil, nil, fmt.Errorf("invalid pagination token: %w", err)
		}
		args = append(args, createdAt)
		tsPh := strconv.Itoa(len(args))
		args = append(args, id)
		idPh := strconv.Itoa(len(args))
		sb.WriteString(" AND (t.created_at, t.transaction_id) < ($" + tsPh + ", $" + idPh + ")")
	}

	// Fetch one extra row to know whether another page exists.
	args = append(args, params.Limit+1)
	sb.WriteString(" ORDER BY t.created_at DESC, t.transaction_id DESC LIMIT $" + strconv.Itoa(len(args)))

	rows, err := r.Pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, nil, fmt.Errorf("error querying transactions: %w", err)
	}
	defer rows.Close()

	txns, err := scanTransactions(rows)
	if err != nil {
		return nil, nil, err
	}

	var nextToken *string
	if len(txns) > params.Limit {
		txns = txns[:params.Limit]
		last := txns[len(txns)-1]
		token := pagination.EncodeToken(last.CreatedAt, last.TransactionID)
		nextToken = &token
	}

	return mapping.ToDomainTransactions(txns), nextToken, nil
}

func scanTransactions(rows pgx.Rows) ([]models.Transaction, error) {
	var txns []models.Transaction
	for rows.Next() {
		var m models.Transaction
		if err := rows.Scan(
			&m.TransactionID, &m.TransactionNumber,
			&m.FromBranchID, &m.ToBranchID, &m.FromStaffID, &m.ToStaffID,
			&m.Amount, &m.Currency, &m.TransferMethod,
			&m.TransactionDate, &m.ReceivedDate, &m.Status,
			&m.ConfirmationCode, &m.Notes, &m.ReceiptURL, &m.CreatedAt,
			&m.FromBranchName, &m.ToBranchName, &m.FromStaffName, &m.ToStaffName,
		); err != nil {
			return nil, fmt.Errorf("error scanning transaction row: %w", err)
		}
		txns = append(txns, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating transaction rows: %w", err)
	}
	return txns, nil
}
