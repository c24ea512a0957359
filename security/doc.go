// Package security provides regex-based input checks and redaction for
// user-supplied text.
//
// # Email
//
//	ok, err := security.ValidateEmail("martin.serafimov@example.com")
//
// The email pattern is deliberately simple. It accepts addresses RFC 5322
// would reject, such as repeated dots in the extension ("a@b.c..d").
//
// # Extraction and Redaction
//
//	security.ExtractPhoneNumbers("Call 555-123-4567")          // ["555-123-4567"]
//	security.CensorSensitiveData("card 1234-5678-1234-5678")  // "card [REDACTED]"
//
// # Password Strength
//
//	report, err := security.CheckPasswordComplexity("SuperSecret1!")
//	report.Score // "4/4"
package security
