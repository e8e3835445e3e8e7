// Package autopay defines the auto-payment capability shared by every bank
// flavour that offers it. Concrete implementations live in sub-packages, one
// per bank; a bank without a sub-package simply has no auto payment.
package autopay
