package repo

import (
	"github.com/GlebRadaev/donations/internal/pg"
	"github.com/GlebRadaev/donations/internal/reconcile"
	adminrepo "github.com/GlebRadaev/donations/internal/repo/admin-repo"
	donationrepo "github.com/GlebRadaev/donations/internal/repo/donation-repo"
	entryrepo "github.com/GlebRadaev/donations/internal/repo/entry-repo"
	ledgerrepo "github.com/GlebRadaev/donations/internal/repo/ledger-repo"
	"github.com/GlebRadaev/donations/internal/service/authservice"
	"github.com/GlebRadaev/donations/internal/service/donationservice"
	"github.com/GlebRadaev/donations/internal/service/paymentservice"
	"github.com/GlebRadaev/donations/internal/service/statsservice"
)

type DonationRepo interface {
	donationservice.Repo
	paymentservice.DonationRepo
	statsservice.DonationRepo
	reconcile.Repo
}

type LedgerRepo interface {
	paymentservice.LedgerRepo
	statsservice.LedgerRepo
}

type EntryRepo interface {
	paymentservice.EntryRepo
	statsservice.EntryRepo
}

type Repositories struct {
	DonationRepo DonationRepo
	LedgerRepo   LedgerRepo
	EntryRepo    EntryRepo
	AdminRepo    authservice.Repo
	TxManager    pg.TXManager
}

func New(conn pg.Database, txManager pg.TXManager) *Repositories {
	return &Repositories{
		DonationRepo: donationrepo.New(conn),
		LedgerRepo:   ledgerrepo.New(conn),
		EntryRepo:    entryrepo.New(conn),
		AdminRepo:    adminrepo.New(conn),
		TxManager:    txManager,
	}
}
