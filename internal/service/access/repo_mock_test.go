package access

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var _ folderRepo = &folderRepoMock{}

type folderRepoMock struct {
	GetByIDFunc          func(ctx context.Context, id uuid.UUID) (*domain.Folder, error)
	CountForIdentityFunc func(ctx context.Context, email domain.Identity) (int, error)

	calls struct {
		GetByID []struct {
			ID uuid.UUID
		}
		CountForIdentity []struct {
			Email domain.Identity
		}
	}
	lockGetByID          sync.RWMutex
	lockCountForIdentity sync.RWMutex
}

func (mock *folderRepoMock) GetByID(ctx context.Context, id uuid.UUID) (*domain.Folder, error) {
	if mock.GetByIDFunc == nil {
		panic("folderRepoMock.GetByIDFunc: method is nil but folderRepo.GetByID was just called")
	}
	mock.lockGetByID.Lock()
	mock.calls.GetByID = append(mock.calls.GetByID, struct{ ID uuid.UUID }{ID: id})
	mock.lockGetByID.Unlock()
	return mock.GetByIDFunc(ctx, id)
}

func (mock *folderRepoMock) GetByIDCalls() []struct{ ID uuid.UUID } {
	mock.lockGetByID.RLock()
	defer mock.lockGetByID.RUnlock()
	return mock.calls.GetByID
}

func (mock *folderRepoMock) CountForIdentity(ctx context.Context, email domain.Identity) (int, error) {
	if mock.CountForIdentityFunc == nil {
		panic("folderRepoMock.CountForIdentityFunc: method is nil but folderRepo.CountForIdentity was just called")
	}
	mock.lockCountForIdentity.Lock()
	mock.calls.CountForIdentity = append(mock.calls.CountForIdentity, struct{ Email domain.Identity }{Email: email})
	mock.lockCountForIdentity.Unlock()
	return mock.CountForIdentityFunc(ctx, email)
}

func (mock *folderRepoMock) CountForIdentityCalls() []struct{ Email domain.Identity } {
	mock.lockCountForIdentity.RLock()
	defer mock.lockCountForIdentity.RUnlock()
	return mock.calls.CountForIdentity
}

var _ membershipRepo = &membershipRepoMock{}

type membershipRepoMock struct {
	GetFunc func(ctx context.Context, folderID uuid.UUID, email domain.Identity) (*domain.FolderMembership, error)

	calls struct {
		Get []struct {
			FolderID uuid.UUID
			Email    domain.Identity
		}
	}
	lockGet sync.RWMutex
}

func (mock *membershipRepoMock) Get(ctx context.Context, folderID uuid.UUID, email domain.Identity) (*domain.FolderMembership, error) {
	if mock.GetFunc == nil {
		panic("membershipRepoMock.GetFunc: method is nil but membershipRepo.Get was just called")
	}
	callInfo := struct {
		FolderID uuid.UUID
		Email    domain.Identity
	}{FolderID: folderID, Email: email}
	mock.lockGet.Lock()
	mock.calls.Get = append(mock.calls.Get, callInfo)
	mock.lockGet.Unlock()
	return mock.GetFunc(ctx, folderID, email)
}

func (mock *membershipRepoMock) GetCalls() []struct {
	FolderID uuid.UUID
	Email    domain.Identity
} {
	mock.lockGet.RLock()
	defer mock.lockGet.RUnlock()
	return mock.calls.Get
}

var _ evaluationCounter = &evaluationCounterMock{}

type evaluationCounterMock struct {
	CountByFolderFunc func(ctx context.Context, folderID uuid.UUID) (int, error)

	calls struct {
		CountByFolder []struct {
			FolderID uuid.UUID
		}
	}
	lockCountByFolder sync.RWMutex
}

func (mock *evaluationCounterMock) CountByFolder(ctx context.Context, folderID uuid.UUID) (int, error) {
	if mock.CountByFolderFunc == nil {
		panic("evaluationCounterMock.CountByFolderFunc: method is nil but evaluationCounter.CountByFolder was just called")
	}
	mock.lockCountByFolder.Lock()
	mock.calls.CountByFolder = append(mock.calls.CountByFolder, struct{ FolderID uuid.UUID }{FolderID: folderID})
	mock.lockCountByFolder.Unlock()
	return mock.CountByFolderFunc(ctx, folderID)
}

func (mock *evaluationCounterMock) CountByFolderCalls() []struct{ FolderID uuid.UUID } {
	mock.lockCountByFolder.RLock()
	defer mock.lockCountByFolder.RUnlock()
	return mock.calls.CountByFolder
}
