package entity

import "time"

// SecureBootEntryKind distinguishes certificates from signature hashes.
type SecureBootEntryKind string

const (
	SecureBootCertificate SecureBootEntryKind = "Certificate"
	SecureBootSignature   SecureBootEntryKind = "Signature"
)

// SignatureTypeSHA256 is the only signature type accepted for enrollment.
const SignatureTypeSHA256 = "EFI_CERT_SHA256_GUID"

// SecureBootEntry is one enrolled record of a secure boot database (db, dbx, KEK, PK).
type SecureBootEntry struct {
	Database      string
	ID            string
	Kind          SecureBootEntryKind
	SignatureType string
	Owner         string
	Data          []byte
	EnrolledAt    time.Time
}
