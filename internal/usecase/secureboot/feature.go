// Package secureboot serves the secure boot database tasks: enrolling and
// deleting certificates and signatures of db, dbx, KEK and PK.
package secureboot

import (
	"context"
	"crypto/x509"
	"encoding/hex"
	"encoding/pem"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/tidwall/gjson"

	"github.com/device-management-toolkit/redfish-sync/internal/entity"
	"github.com/device-management-toolkit/redfish-sync/pkg/logger"
)

const (
	certificateTypePEM = "PEM"
	severityCritical   = "Critical"
	sha256Size         = 32
)

var (
	errSecurity       = errors.New("secureboot - security violation")
	errNotPEM         = errors.New("secureboot - certificate is not PEM")
	errNotSHA256      = errors.New("secureboot - signature is not SHA256")
	errInternal       = errors.New("secureboot - internal failure")
	errUnknownEntryID = errors.New("secureboot - unknown entry")
)

// Feature -.
type Feature struct {
	repo     Repository
	reporter Reporter
	log      logger.Interface
	now      func() time.Time
}

// New -.
func New(repo Repository, reporter Reporter, log logger.Interface) *Feature {
	return &Feature{repo: repo, reporter: reporter, log: log, now: time.Now}
}

// HandleTask -.
func (f *Feature) HandleTask(ctx context.Context, req *entity.TaskRequest) entity.TaskResult {
	err := f.handle(ctx, req)
	if err == nil {
		return entity.TaskCompleted
	}

	message := messageFor(err)
	f.log.Warn("secureboot - HandleTask - task %s: %v", req.TaskID, err)

	if rerr := f.reporter.ReportMessage(ctx, req.TaskID, message, severityCritical); rerr != nil {
		f.log.Warn("secureboot - HandleTask - task %s: report %q: %v", req.TaskID, message, rerr)
	}

	return entity.TaskFailed
}

func messageFor(err error) string {
	switch {
	case errors.Is(err, ErrUnsupportedRequest):
		return entity.MessageRequestKeyUnsupported
	case errors.Is(err, ErrMissingKey), errors.Is(err, errUnknownEntryID):
		return entity.MessageRequestKeyNotFound
	case errors.Is(err, errNotPEM):
		return entity.MessageOnlyPEMCertificate
	case errors.Is(err, errNotSHA256):
		return entity.MessageOnlySHA256Signature
	case errors.Is(err, errSecurity):
		return entity.MessageSecurityViolation
	case errors.Is(err, errInternal):
		return entity.MessageInternalFailure
	}

	return entity.MessageCannotFinish
}

func (f *Feature) handle(ctx context.Context, task *entity.TaskRequest) error {
	req, err := ParseRequest(task.Operation, task.TargetURI)
	if err != nil {
		return err
	}

	if req.Type == Delete {
		return f.delete(ctx, req)
	}

	if !gjson.ValidBytes(task.JSONBody) {
		return fmt.Errorf("%w: request body is not JSON", ErrMissingKey)
	}

	body := gjson.ParseBytes(task.JSONBody)

	entry := &entity.SecureBootEntry{
		Database:   req.Database,
		Owner:      body.Get("UefiSignatureOwner").String(),
		EnrolledAt: f.now().UTC(),
	}

	if req.IsCertificate {
		err = decodeCertificate(body, entry)
	} else {
		err = decodeSignature(body, entry)
	}

	if err != nil {
		return err
	}

	return f.enroll(ctx, entry)
}

func decodeCertificate(body gjson.Result, entry *entity.SecureBootEntry) error {
	certType := body.Get("CertificateType")
	certString := body.Get("CertificateString")

	if !certType.Exists() || !certString.Exists() {
		return fmt.Errorf("%w: CertificateType and CertificateString are required", ErrMissingKey)
	}

	if certType.String() != certificateTypePEM {
		return fmt.Errorf("%w: %q", errNotPEM, certType.String())
	}

	block, _ := pem.Decode([]byte(certString.String()))
	if block == nil || block.Type != "CERTIFICATE" {
		return fmt.Errorf("%w: no PEM certificate block", errSecurity)
	}

	if _, err := x509.ParseCertificate(block.Bytes); err != nil {
		return fmt.Errorf("%w: %w", errSecurity, err)
	}

	entry.Kind = entity.SecureBootCertificate
	entry.Data = block.Bytes

	return nil
}

func decodeSignature(body gjson.Result, entry *entity.SecureBootEntry) error {
	sigType := body.Get("SignatureType")
	sigString := body.Get("SignatureString")

	if !sigType.Exists() || !sigString.Exists() {
		return fmt.Errorf("%w: SignatureType and SignatureString are required", ErrMissingKey)
	}

	if sigType.String() != entity.SignatureTypeSHA256 {
		return fmt.Errorf("%w: %q", errNotSHA256, sigType.String())
	}

	digest, err := hex.DecodeString(sigString.String())
	if err != nil || len(digest) != sha256Size {
		return fmt.Errorf("%w: signature is not a SHA256 digest", errSecurity)
	}

	entry.Kind = entity.SecureBootSignature
	entry.SignatureType = entity.SignatureTypeSHA256
	entry.Data = digest

	return nil
}

func (f *Feature) enroll(ctx context.Context, entry *entity.SecureBootEntry) error {
	existing, err := f.repo.List(ctx, entry.Database)
	if err != nil {
		return fmt.Errorf("%w: %w", errInternal, err)
	}

	next := 1

	for i := range existing {
		if n, err := strconv.Atoi(existing[i].ID); err == nil && n >= next {
			next = n + 1
		}
	}

	entry.ID = strconv.Itoa(next)

	if err = f.repo.Insert(ctx, entry); err != nil {
		return fmt.Errorf("%w: %w", errInternal, err)
	}

	f.log.Info("secureboot - enroll - %s %s %s", entry.Database, entry.Kind, entry.ID)

	return nil
}

func (f *Feature) delete(ctx context.Context, req *Request) error {
	existed, err := f.repo.Delete(ctx, req.Database, req.EntryID)
	if err != nil {
		return fmt.Errorf("%w: %w", errInternal, err)
	}

	if !existed {
		return fmt.Errorf("%w: %s/%s", errUnknownEntryID, req.Database, req.EntryID)
	}

	f.log.Info("secureboot - delete - %s %s", req.Database, req.EntryID)

	return nil
}
