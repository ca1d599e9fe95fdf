package testdata

// Test cards understood by the bank simulator. The last digit picks the outcome.
type TestCard struct {
	CardNumber  string
	CVV         string
	ExpiryMonth int
	ExpiryYear  int
	Description string
}

var (
	AuthorizedCard = TestCard{
		CardNumber:  "4111111111111111",
		CVV:         "123",
		ExpiryMonth: 12,
		ExpiryYear:  2099,
		Description: "Odd last digit, authorized",
	}

	DeclinedCard = TestCard{
		CardNumber:  "5555555555554444",
		CVV:         "789",
		ExpiryMonth: 9,
		ExpiryYear:  2099,
		Description: "Even last digit, declined",
	}

	UnavailableCard = TestCard{
		CardNumber:  "5105105105105100",
		CVV:         "4321",
		ExpiryMonth: 3,
		ExpiryYear:  2099,
		Description: "Last digit zero, bank answers 503",
	}

	ExpiredCard = TestCard{
		CardNumber:  "4111111111111111",
		CVV:         "321",
		ExpiryMonth: 3,
		ExpiryYear:  2020,
		Description: "Expired card",
	}
)
