// Package mailer prepares and delivers plain-text notification emails.
//
// Delivery goes through the Sender interface. LogSender is the default
// implementation and only writes the message to the log; the resend
// subpackage delivers through the Resend API.
//
// Bodies come from text templates with optional YAML frontmatter:
//
//	---
//	Subject: New order from {{.Customer.Name}}
//	---
//	Order Date: {{.Date}}
//
// The subject is itself a template and is rendered against the same data.
package mailer
