package conversation

import (
	"fmt"
	"strings"

	"github.com/bosesayankolkata/dairyexpress/internal/models"
)

const welcomePrompt = `🥛 *Welcome to Fresh Dairy!* 🥛

Are you a:
1️⃣ *New Customer*
2️⃣ *Existing Customer*

Please reply with *1* for New Customer or *2* for Existing Customer.

_Type "Back" anytime to go to the previous step_`

const customerTypeRetryPrompt = `Please reply with *1* for New Customer or *2* for Existing Customer.

📱 Type *Back* to return to welcome message`

const locationPrompt = `📍 *Location Required*

Please enter your PIN CODE for delivery availability check:

📮 Type your 6-digit PIN CODE

_Type "Back" to go to previous step_`

const invalidLocationPrompt = `❌ *Invalid input*

Please enter a valid 6-digit PIN CODE (e.g., 560001).

📱 Type *Back* to go to previous step`

const customQuantityPrompt = `🔧 *Custom Order*

Please specify:
1. Quantity per delivery (1-10)
2. Frequency (daily/alternate/weekly)

Example: "2 bottles daily" or "1 bottle weekly"

📱 Type *Back* to select from preset options`

const deliverySlotsPrompt = `🕐 *Select Delivery Time*

When would you like your delivery?

1️⃣ *6:00 AM - 8:00 AM* (Early Morning)
2️⃣ *8:00 AM - 10:00 AM* (Morning)

📱 Reply with the number of your choice
🔙 Type *Back* to change quantity/frequency`

const addressRetryPrompt = `Please provide a more detailed address including house number, street, and landmark.`

const namePrompt = `👤 *What's your name?*

Please provide your full name for the delivery.`

const nameRetryPrompt = `Please provide your full name.`

const existingMenuPrompt = `👋 *Welcome back to Fresh Dairy!*

Choose an option:

1️⃣ *Repeat last order*
2️⃣ *Modify subscription*
3️⃣ *Change delivery address*
4️⃣ *New order*
5️⃣ *Pause subscription*
6️⃣ *Skip tomorrow's delivery*
7️⃣ *Change quantity*
8️⃣ *Cancel subscription*

Reply with the number of your choice.

📱 Type *Back* to go to main menu`

const existingMenuRetryPrompt = `Please select a valid option (1-8).

📱 Type *Back* to return to main menu`

const reorientPrompt = `I didn't understand that. Let me help you start over.

Type *Hi* to begin ordering! 🥛`

const confirmRetryPrompt = `Please reply *CONFIRM* to confirm your order or *CANCEL* to cancel.`

const cancelledPrompt = `❌ *Order cancelled.*

No worries! Type *Hi* whenever you want to place an order.

We're here to serve you fresh dairy products! 🥛`

func notServiceablePrompt(pincode string) string {
	return fmt.Sprintf(`❌ *Sorry, we don't deliver to %s yet.*

We're working to expand our delivery areas. Please try again with a different PIN CODE.

📱 Type *Back* to go to previous step`, pincode)
}

func serviceablePrompt(pc *models.PinCode) string {
	area := pc.AreaName
	if area == "" {
		area = pc.Pincode
	}
	return fmt.Sprintf("✅ *Great! We deliver to %s*\n📍 Area: %s", pc.Pincode, area)
}

func categoriesPrompt(categories []models.Category) string {
	if len(categories) == 0 {
		return "Sorry, no products are currently available. Please contact support."
	}

	var b strings.Builder
	b.WriteString("🛒 *Select Product Category*\n\nChoose from our fresh dairy products:\n\n")
	for i, category := range categories {
		fmt.Fprintf(&b, "%d️⃣ *%s*\n", i+1, category.Name)
		if category.Description != "" {
			fmt.Fprintf(&b, "   _%s_\n", category.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("📱 Reply with the number of your choice\n🔙 Type *Back* to go to previous step")
	return b.String()
}

func productTypesPrompt(productTypes []models.ProductType) string {
	if len(productTypes) == 0 {
		return "No product types available for this category."
	}

	var b strings.Builder
	b.WriteString("📝 *Please select a product type:*\n\n")
	for i, ptype := range productTypes {
		fmt.Fprintf(&b, "%d️⃣ *%s*\n", i+1, ptype.Name)
		if ptype.Description != "" {
			fmt.Fprintf(&b, "   _%s_\n", ptype.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("Please reply with the number of your choice.")
	return b.String()
}

func characteristicsPrompt(characteristics []models.Characteristic) string {
	if len(characteristics) == 0 {
		return "No characteristics available for this product type."
	}

	var b strings.Builder
	b.WriteString("✨ *Please select product characteristics:*\n\n")
	for i, char := range characteristics {
		fmt.Fprintf(&b, "%d️⃣ *%s*\n", i+1, char.Name)
		if char.Description != "" {
			fmt.Fprintf(&b, "   _%s_\n", char.Description)
		}
		b.WriteString("\n")
	}
	b.WriteString("Please reply with the number of your choice.")
	return b.String()
}

func sizesPrompt(sizes []models.Size) string {
	if len(sizes) == 0 {
		return "No sizes available for this product."
	}

	var b strings.Builder
	b.WriteString("📏 *Please select a size:*\n\n")
	for i, size := range sizes {
		fmt.Fprintf(&b, "%d️⃣ *%s (%s)*\n   💰 ₹%.2f\n\n", i+1, size.Name, size.Value, size.Price)
	}
	b.WriteString("Please reply with the number of your choice.")
	return b.String()
}

func quantityFrequencyPrompt(sel Selections) string {
	price := sel.SizePrice
	return fmt.Sprintf(`📦 *Selected: %s - %s*
📏 Size: %s (%s)
💰 Price: ₹%.2f per unit

🔢 *Quantity & Frequency*

1️⃣ *1 bottle - Once* (₹%.2f)
2️⃣ *1 bottle - Daily* (₹%.2f/month)
3️⃣ *2 bottles - Daily* (₹%.2f/month)
4️⃣ *1 bottle - Alternate days* (₹%.2f/month)
5️⃣ *Custom quantity & frequency*

📱 Reply with the number of your choice
🔙 Type *Back* to select different product`,
		sel.ProductTypeName, sel.CharacteristicName,
		sel.SizeName, sel.SizeValue, price,
		price, price*30, price*2*30, price*15)
}

func addressPrompt(slot string) string {
	return fmt.Sprintf(`✅ *Delivery Time: %s*

📝 *Please provide your complete delivery address:*

Include:
• House/Flat number
• Street name
• Landmark
• Area

Example: "A-101, Green Valley Apartments, Near City Mall, Koramangala"

📱 Type *Back* to change delivery time`, slot)
}

func confirmationPrompt(sel Selections) string {
	freqName := ""
	if sel.Frequency != nil {
		freqName = sel.Frequency.Name
	}
	return fmt.Sprintf(`📋 *ORDER CONFIRMATION*

👤 Name: %s
📦 Product: %s - %s
🏷️ Type: %s
📏 Size: %s (%s)
🔢 Quantity: %d
📍 Address: %s
📮 PIN: %s
🕐 Slot: %s
🔄 Frequency: %s
💰 *Total Amount: ₹%.2f*

Reply *CONFIRM* to proceed to payment or *CANCEL* to start over.`,
		sel.CustomerName,
		sel.CategoryName, sel.ProductTypeName,
		sel.CharacteristicName,
		sel.SizeName, sel.SizeValue,
		sel.Quantity,
		sel.Address,
		sel.Pincode,
		sel.TimeSlot,
		freqName,
		sel.TotalAmount)
}

func orderConfirmedPrompt(orderNumber string, total float64, supportPhone string) string {
	return fmt.Sprintf(`✅ *ORDER CONFIRMED!*

📝 Order Number: %s
💰 Amount: ₹%.2f

💳 *Payment Link:* (Razorpay integration coming soon)

📞 For any queries, contact: %s

Thank you for choosing Fresh Dairy! 🥛`, orderNumber, total, supportPhone)
}

func invalidOptionPrompt(max int) string {
	return fmt.Sprintf("❌ Please select a valid option (1-%d).\n\n📱 Type *Back* to go to previous step", max)
}

const notNumberPrompt = `❌ Please reply with a number to make a selection.

📱 Type *Back* to go to previous step`

func comingSoonPrompt(feature string) string {
	return fmt.Sprintf("🚧 *%s* feature coming soon!\n\n📱 Type *Back* to return to menu", feature)
}

func selfServicePrompt(action string) string {
	switch action {
	case "pause":
		return `⏸️ *Subscription Paused*

Your subscription has been paused from tomorrow.
Type *RESUME* anytime to resume deliveries.

📱 Type *Back* to return to menu`
	case "skip tomorrow":
		return `⏭️ *Tomorrow Skipped*

Tomorrow's delivery has been skipped.
Next delivery as per regular schedule.

📱 Type *Back* to return to menu`
	case "change qty":
		return `🔢 *Change Quantity*

Current: 2 bottles daily
Enter new quantity (1-10):

📱 Type *Back* to return to menu`
	case "cancel subscription":
		return `❌ *Cancel Subscription*

Are you sure you want to cancel?
Reply *CONFIRM* to cancel or *BACK* to return.

📱 Type *Back* to return to menu`
	}
	return ""
}
