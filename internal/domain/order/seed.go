// internal/domain/order/seed.go
package order

// Seed returns the fixed initial order list. The store reconstructs from
// this on every start; orders are session-only and never snapshotted.
func Seed() []Order {
	return []Order{
		{ID: "3210", Name: "Carlee Gernon", Date: "May 23, 2021", Total: 239.00, Status: StatusProcessing},
		{ID: "3211", Name: "Mathilde Tumilson", Date: "May 15, 2021", Total: 650.50, Status: StatusShipped},
		{ID: "3212", Name: "Audrye Headford", Date: "Apr 24, 2021", Total: 100.05, Status: StatusCompleted},
		{ID: "3213", Name: "Brantley Mell", Date: "Apr 10, 2021", Total: 19, Status: StatusRefunded},
		{ID: "3214", Name: "Dominique Enriques", Date: "March 5, 2021", Total: 150.09, Status: StatusCancelled},
		{ID: "3215", Name: "Jessica Parker", Date: "May 20, 2021", Total: 425.00, Status: StatusProcessing},
		{ID: "3216", Name: "Michael Jordan", Date: "May 18, 2021", Total: 890.75, Status: StatusShipped},
		{ID: "3217", Name: "Sarah Connor", Date: "May 12, 2021", Total: 320.50, Status: StatusCompleted},
		{ID: "3218", Name: "John Smith", Date: "May 8, 2021", Total: 175.25, Status: StatusProcessing},
		{ID: "3219", Name: "Emma Watson", Date: "May 5, 2021", Total: 540.00, Status: StatusShipped},
		{ID: "3220", Name: "David Brown", Date: "Apr 30, 2021", Total: 99.99, Status: StatusCompleted},
		{ID: "3221", Name: "Lisa Anderson", Date: "Apr 28, 2021", Total: 275.80, Status: StatusRefunded},
		{ID: "3222", Name: "Robert Taylor", Date: "Apr 25, 2021", Total: 450.00, Status: StatusProcessing},
		{ID: "3223", Name: "Jennifer Lopez", Date: "Apr 22, 2021", Total: 680.30, Status: StatusShipped},
		{ID: "3224", Name: "Chris Evans", Date: "Apr 20, 2021", Total: 125.50, Status: StatusCompleted},
		{ID: "3225", Name: "Amanda White", Date: "Apr 18, 2021", Total: 350.00, Status: StatusCancelled},
		{ID: "3226", Name: "Tom Holland", Date: "Apr 15, 2021", Total: 520.75, Status: StatusProcessing},
		{ID: "3227", Name: "Scarlett Johnson", Date: "Apr 12, 2021", Total: 790.00, Status: StatusShipped},
		{ID: "3228", Name: "Mark Wilson", Date: "Apr 8, 2021", Total: 210.40, Status: StatusCompleted},
		{ID: "3229", Name: "Emily Davis", Date: "Apr 5, 2021", Total: 385.90, Status: StatusRefunded},
		{ID: "3230", Name: "Daniel Garcia", Date: "Apr 2, 2021", Total: 615.25, Status: StatusProcessing},
		{ID: "3231", Name: "Olivia Martinez", Date: "Mar 30, 2021", Total: 295.00, Status: StatusShipped},
		{ID: "3232", Name: "James Rodriguez", Date: "Mar 28, 2021", Total: 470.60, Status: StatusCompleted},
		{ID: "3233", Name: "Sophia Lee", Date: "Mar 25, 2021", Total: 180.30, Status: StatusCancelled},
		{ID: "3234", Name: "William Clark", Date: "Mar 22, 2021", Total: 725.00, Status: StatusProcessing},
		{ID: "3235", Name: "Isabella Lewis", Date: "Mar 20, 2021", Total: 340.85, Status: StatusShipped},
		{ID: "3236", Name: "Benjamin Walker", Date: "Mar 18, 2021", Total: 565.50, Status: StatusCompleted},
		{ID: "3237", Name: "Mia Hall", Date: "Mar 15, 2021", Total: 410.20, Status: StatusRefunded},
		{ID: "3238", Name: "Lucas Allen", Date: "Mar 12, 2021", Total: 255.75, Status: StatusProcessing},
		{ID: "3239", Name: "Charlotte Young", Date: "Mar 10, 2021", Total: 890.00, Status: StatusShipped},
	}
}
