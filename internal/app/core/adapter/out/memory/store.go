package memory

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/JoeShih716/go-quickpay/internal/app/core/domain"
	"github.com/JoeShih716/go-quickpay/internal/app/core/usecase"
	"github.com/JoeShih716/go-quickpay/pkg/wal"
)

// ErrDuplicateAccountNumber 帳號重複
var ErrDuplicateAccountNumber = errors.New("duplicate account number")

// ErrDuplicateTransaction 交易編號重複
var ErrDuplicateTransaction = errors.New("duplicate transaction token")

// recordCommit WAL 紀錄類型：一次提交的所有寫入
const recordCommit = "commit"

// commitRecord 一次提交寫入的帳戶與交易，重放時整筆套用；帳戶以最後一次寫入為準
type commitRecord struct {
	Accounts     []*domain.Account     `json:"accounts,omitempty"`
	Transactions []*domain.Transaction `json:"transactions,omitempty"`
}

func (r *commitRecord) empty() bool {
	return len(r.Accounts) == 0 && len(r.Transactions) == 0
}

type txKey struct{}

// pending 交易內尚未提交的寫入
type pending struct {
	commitRecord
	accountIdx     map[string]int // 帳號 -> Accounts 位置
	transactionIdx map[string]int // 交易編號 -> Transactions 位置
}

func newPending() *pending {
	return &pending{
		accountIdx:     make(map[string]int),
		transactionIdx: make(map[string]int),
	}
}

func (p *pending) putAccount(a *domain.Account) {
	if i, ok := p.accountIdx[a.Number]; ok {
		p.Accounts[i] = a
		return
	}
	p.accountIdx[a.Number] = len(p.Accounts)
	p.Accounts = append(p.Accounts, a)
}

func (p *pending) putTransaction(t *domain.Transaction) {
	p.transactionIdx[t.Token] = len(p.Transactions)
	p.Transactions = append(p.Transactions, t)
}

func (p *pending) account(number string) (*domain.Account, bool) {
	i, ok := p.accountIdx[number]
	if !ok {
		return nil, false
	}
	return p.Accounts[i], true
}

// holds 帳戶是否為交易內新增 (尚未提交)
func (p *pending) holds(a *domain.Account) bool {
	if p == nil {
		return false
	}
	staged, ok := p.account(a.Number)
	return ok && staged.ID == a.ID
}

func (p *pending) transaction(token string) (*domain.Transaction, bool) {
	i, ok := p.transactionIdx[token]
	if !ok {
		return nil, false
	}
	return p.Transactions[i], true
}

func pendingFrom(ctx context.Context) *pending {
	p, _ := ctx.Value(txKey{}).(*pending)
	return p
}

// Store 是一個使用 RWMutex 保護的記憶體資料庫
//
// 結構:
//
//	members: 會員 (啟動時由設定檔載入)
//	accounts: 帳戶，以 ID 為 key；accountIDs 為帳號索引
//	transactions: 交易紀錄，以交易編號為 key；cancellations 為原交易 -> 取消紀錄索引
//	wal: 每次提交先落地到 WAL，重啟時重放
type Store struct {
	mu            sync.RWMutex
	members       map[int64]*domain.Member
	accounts      map[int64]*domain.Account
	accountIDs    map[string]int64
	transactions  map[string]*domain.Transaction
	cancellations map[string]string

	nextAccountID     int64
	nextTransactionID int64

	// Write-Ahead Logging，可為 nil (純記憶體)
	wal *wal.WAL
}

// NewStore 建立一個新的 Store 實例
//
// 參數:
//
//	w: Write-Ahead Log 實例，nil 表示不持久化
//	members: 初始會員
//
// 回傳:
//
//	*Store: Store 實例
//	error: 初始化錯誤 (如 WAL 恢復失敗)
func NewStore(w *wal.WAL, members ...*domain.Member) (*Store, error) {
	s := &Store{
		members:       make(map[int64]*domain.Member, len(members)),
		accounts:      make(map[int64]*domain.Account),
		accountIDs:    make(map[string]int64),
		transactions:  make(map[string]*domain.Transaction),
		cancellations: make(map[string]string),
		wal:           w,
	}
	for _, m := range members {
		cp := *m
		s.members[m.ID] = &cp
	}
	if err := s.recoverFromWAL(); err != nil {
		return nil, err
	}
	return s, nil
}

// recoverFromWAL 從 WAL 檔案恢復資料
// 只有 NewStore 呼叫，無需 Lock (單執行緒)
func (s *Store) recoverFromWAL() error {
	if s.wal == nil {
		return nil
	}
	return s.wal.Replay(func(entry wal.Entry) error {
		if entry.Kind != recordCommit {
			return fmt.Errorf("unknown wal record kind %q at seq %d", entry.Kind, entry.Seq)
		}
		var rec commitRecord
		if err := json.Unmarshal(entry.Data, &rec); err != nil {
			return fmt.Errorf("decode wal record %d: %w", entry.Seq, err)
		}
		s.apply(&rec)
		return nil
	})
}

// WithinTransaction 交易內的寫入先暫存，fn 成功後才一次寫入 WAL 與記憶體；
// fn 失敗則全部捨棄。已在交易內時直接沿用外層交易。
func (s *Store) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if pendingFrom(ctx) != nil {
		return fn(ctx)
	}
	p := newPending()
	if err := fn(context.WithValue(ctx, txKey{}, p)); err != nil {
		return err
	}
	if p.empty() {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	// 暫存期間其他提交可能已寫入相同的帳號或交易編號
	for _, a := range p.Accounts {
		if err := s.checkAccount(a); err != nil {
			return err
		}
	}
	for _, t := range p.Transactions {
		if _, exists := s.transactions[t.Token]; exists {
			return ErrDuplicateTransaction
		}
	}
	return s.commit(&p.commitRecord)
}

// Compact 以目前的資料重寫 WAL，只保留每個帳戶的最新狀態與全部交易
func (s *Store) Compact() error {
	if s.wal == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	accounts := make([]*domain.Account, 0, len(s.accounts))
	for _, a := range s.accounts {
		accounts = append(accounts, a)
	}
	sort.Slice(accounts, func(i, j int) bool { return accounts[i].ID < accounts[j].ID })
	transactions := make([]*domain.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		transactions = append(transactions, t)
	}
	sort.Slice(transactions, func(i, j int) bool { return transactions[i].ID < transactions[j].ID })

	return s.wal.Rewrite(func(add func(kind string, v any) error) error {
		if len(accounts) == 0 && len(transactions) == 0 {
			return nil
		}
		return add(recordCommit, commitRecord{Accounts: accounts, Transactions: transactions})
	})
}

// Members 會員資料表
func (s *Store) Members() *MemberStore { return &MemberStore{s: s} }

// Accounts 帳戶資料表
func (s *Store) Accounts() *AccountStore { return &AccountStore{s: s} }

// Ledger 交易紀錄表
func (s *Store) Ledger() *LedgerStore { return &LedgerStore{s: s} }

// commit 先寫 WAL 再更新記憶體，呼叫端需持有寫鎖
func (s *Store) commit(rec *commitRecord) error {
	if s.wal != nil {
		// 1. 寫入 WAL (Critical Path)
		if _, err := s.wal.Append(recordCommit, rec); err != nil {
			return fmt.Errorf("write wal: %w", err)
		}
	}
	// 2. 更新記憶體
	s.apply(rec)
	return nil
}

func (s *Store) apply(rec *commitRecord) {
	for _, a := range rec.Accounts {
		s.applyAccount(a)
	}
	for _, t := range rec.Transactions {
		s.applyTransaction(t)
	}
}

func (s *Store) applyAccount(a *domain.Account) {
	cp := cloneAccount(a)
	s.accounts[cp.ID] = cp
	s.accountIDs[cp.Number] = cp.ID
	if cp.ID > s.nextAccountID {
		s.nextAccountID = cp.ID
	}
}

func (s *Store) applyTransaction(t *domain.Transaction) {
	cp := *t
	s.transactions[cp.Token] = &cp
	if cp.CancelledToken != "" && cp.Type == domain.TransactionTypeCancel && cp.Result == domain.TransactionResultSuccess {
		s.cancellations[cp.CancelledToken] = cp.Token
	}
	if cp.ID > s.nextTransactionID {
		s.nextTransactionID = cp.ID
	}
}

// checkAccount 帳號不可被其他帳戶佔用，呼叫端需持有鎖
func (s *Store) checkAccount(a *domain.Account) error {
	if id, exists := s.accountIDs[a.Number]; exists && id != a.ID {
		return ErrDuplicateAccountNumber
	}
	return nil
}

func cloneAccount(a *domain.Account) *domain.Account {
	cp := *a
	if a.UnregisteredAt != nil {
		at := *a.UnregisteredAt
		cp.UnregisteredAt = &at
	}
	return &cp
}

// MemberStore 會員資料表
type MemberStore struct {
	s *Store
}

func (m *MemberStore) FindByID(ctx context.Context, id int64) (*domain.Member, error) {
	m.s.mu.RLock()
	defer m.s.mu.RUnlock()
	member, ok := m.s.members[id]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	cp := *member
	return &cp, nil
}

// AccountStore 帳戶資料表
type AccountStore struct {
	s *Store
}

// FindByNumber 交易內會先看到尚未提交的寫入
func (a *AccountStore) FindByNumber(ctx context.Context, number string) (*domain.Account, error) {
	if p := pendingFrom(ctx); p != nil {
		if staged, ok := p.account(number); ok {
			return cloneAccount(staged), nil
		}
	}
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	id, ok := a.s.accountIDs[number]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	return cloneAccount(a.s.accounts[id]), nil
}

func (a *AccountStore) FindByOwner(ctx context.Context, memberID int64) ([]*domain.Account, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	out := make([]*domain.Account, 0)
	for _, account := range a.s.accounts {
		if account.MemberID == memberID {
			out = append(out, cloneAccount(account))
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (a *AccountStore) CountByOwner(ctx context.Context, memberID int64) (int64, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	var n int64
	for _, account := range a.s.accounts {
		if account.MemberID == memberID {
			n++
		}
	}
	return n, nil
}

func (a *AccountStore) FindHighestNumbered(ctx context.Context) (*domain.Account, error) {
	a.s.mu.RLock()
	defer a.s.mu.RUnlock()
	var highest *domain.Account
	for _, account := range a.s.accounts {
		if highest == nil || account.Number > highest.Number {
			highest = account
		}
	}
	if highest == nil {
		return nil, domain.ErrRecordNotFound
	}
	return cloneAccount(highest), nil
}

// Save 新增 (ID 為 0) 或更新帳戶；交易內只暫存，提交時才生效
func (a *AccountStore) Save(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	a.s.mu.Lock()
	defer a.s.mu.Unlock()

	p := pendingFrom(ctx)
	cp := cloneAccount(account)
	if cp.ID == 0 {
		if _, exists := a.s.accountIDs[cp.Number]; exists {
			return nil, ErrDuplicateAccountNumber
		}
		if p != nil {
			if _, staged := p.account(cp.Number); staged {
				return nil, ErrDuplicateAccountNumber
			}
		}
		// 先保留 ID，rollback 時留下空號
		a.s.nextAccountID++
		cp.ID = a.s.nextAccountID
	} else if _, ok := a.s.accounts[cp.ID]; !ok && !p.holds(cp) {
		return nil, domain.ErrRecordNotFound
	}

	if p != nil {
		p.putAccount(cp)
		return cloneAccount(cp), nil
	}
	if err := a.s.commit(&commitRecord{Accounts: []*domain.Account{cp}}); err != nil {
		return nil, err
	}
	return cloneAccount(cp), nil
}

// LedgerStore 交易紀錄表
type LedgerStore struct {
	s *Store
}

// FindByToken 交易內會先看到尚未提交的寫入
func (l *LedgerStore) FindByToken(ctx context.Context, token string) (*domain.Transaction, error) {
	if p := pendingFrom(ctx); p != nil {
		if staged, ok := p.transaction(token); ok {
			cp := *staged
			return &cp, nil
		}
	}
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	tran, ok := l.s.transactions[token]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	cp := *tran
	return &cp, nil
}

func (l *LedgerStore) FindCancellation(ctx context.Context, token string) (*domain.Transaction, error) {
	if p := pendingFrom(ctx); p != nil {
		for _, staged := range p.Transactions {
			if staged.CancelledToken == token && staged.Type == domain.TransactionTypeCancel && staged.Result == domain.TransactionResultSuccess {
				cp := *staged
				return &cp, nil
			}
		}
	}
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	cancelToken, ok := l.s.cancellations[token]
	if !ok {
		return nil, domain.ErrRecordNotFound
	}
	cp := *l.s.transactions[cancelToken]
	return &cp, nil
}

// Save 只允許新增，交易編號重複視為錯誤；交易內只暫存，提交時才生效
func (l *LedgerStore) Save(ctx context.Context, tran *domain.Transaction) (*domain.Transaction, error) {
	l.s.mu.Lock()
	defer l.s.mu.Unlock()

	p := pendingFrom(ctx)
	if _, exists := l.s.transactions[tran.Token]; exists {
		return nil, ErrDuplicateTransaction
	}
	if p != nil {
		if _, staged := p.transaction(tran.Token); staged {
			return nil, ErrDuplicateTransaction
		}
	}
	cp := *tran
	l.s.nextTransactionID++
	cp.ID = l.s.nextTransactionID

	if p != nil {
		p.putTransaction(&cp)
	} else if err := l.s.commit(&commitRecord{Transactions: []*domain.Transaction{&cp}}); err != nil {
		return nil, err
	}
	out := cp
	return &out, nil
}

// Count 交易紀錄總數
func (l *LedgerStore) Count() int {
	l.s.mu.RLock()
	defer l.s.mu.RUnlock()
	return len(l.s.transactions)
}

var (
	_ usecase.MemberStore  = (*MemberStore)(nil)
	_ usecase.AccountStore = (*AccountStore)(nil)
	_ usecase.LedgerStore  = (*LedgerStore)(nil)
	_ usecase.Transactor   = (*Store)(nil)
)
