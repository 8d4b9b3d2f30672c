package auth

import (
	"sync"
	"time"

	"github.com/RoniAntikainen/Taitoarvio-sub000/internal/domain"
)

var _ sessionIssuer = &sessionIssuerMock{}

type sessionIssuerMock struct {
	IssueSessionFunc func(p domain.Principal) (string, time.Time, error)

	calls struct {
		IssueSession []struct {
			P domain.Principal
		}
	}
	lockIssueSession sync.RWMutex
}

func (mock *sessionIssuerMock) IssueSession(p domain.Principal) (string, time.Time, error) {
	if mock.IssueSessionFunc == nil {
		panic("sessionIssuerMock.IssueSessionFunc: method is nil but sessionIssuer.IssueSession was just called")
	}
	callInfo := struct {
		P domain.Principal
	}{P: p}
	mock.lockIssueSession.Lock()
	mock.calls.IssueSession = append(mock.calls.IssueSession, callInfo)
	mock.lockIssueSession.Unlock()
	return mock.IssueSessionFunc(p)
}

func (mock *sessionIssuerMock) IssueSessionCalls() []struct {
	P domain.Principal
} {
	mock.lockIssueSession.RLock()
	calls := mock.calls.IssueSession
	mock.lockIssueSession.RUnlock()
	return calls
}
