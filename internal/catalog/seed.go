package catalog

// Default returns the built-in storefront catalog. Insertion order is
// the "featured" order.
func Default() *Catalog {
	return New([]Product{
		{
			ID:          "1",
			Name:        "Astra RGB Gaming Headset",
			Description: "Over-ear wired gaming headset with 7.1 surround sound and detachable mic",
			Category:    "Gaming",
			Price:       8000,
			OldPrice:    10000,
			Rating:      4.7,
			Tags:        []string{"gaming", "headset", "rgb", "wired"},
			Image:       "/images/products/astra-headset.jpg",
			Colors:      []string{"Black", "White"},
			Specs:       map[string]string{"Driver": "50mm", "Connector": "3.5mm / USB"},
		},
		{
			ID:          "2",
			Name:        "Nimbus Smart Plug",
			Description: "Wi-Fi smart plug with energy monitoring and voice assistant support",
			Category:    "Smart Home",
			Price:       2500,
			Rating:      4.4,
			Tags:        []string{"smart home", "plug", "wifi"},
			Image:       "/images/products/nimbus-plug.jpg",
			Specs:       map[string]string{"Max Load": "10A", "Protocol": "Wi-Fi 2.4GHz"},
		},
		{
			ID:          "3",
			Name:        "Volt 6-Way Power Strip",
			Description: "Surge-protected power strip with six outlets and two USB ports",
			Category:    "Power & Plugs",
			Price:       3500,
			OldPrice:    4200,
			Rating:      4.2,
			Tags:        []string{"power strip", "surge", "usb"},
			Image:       "/images/products/volt-strip.jpg",
		},
		{
			ID:          "4",
			Name:        "Pulse Wireless Earbuds",
			Description: "True wireless earbuds with active noise cancellation and 24h battery",
			Category:    "Audio",
			Price:       12000,
			OldPrice:    15000,
			Rating:      4.8,
			Tags:        []string{"audio", "earbuds", "wireless", "anc"},
			Image:       "/images/products/pulse-earbuds.jpg",
			Colors:      []string{"Black", "Mint", "Sand"},
		},
		{
			ID:          "5",
			Name:        "Braided USB-C Cable 2m",
			Description: "Nylon-braided USB-C to USB-C cable rated for 100W fast charging",
			Category:    "Accessories",
			Price:       1200,
			Rating:      4.5,
			Tags:        []string{"usb cable", "usb-c", "charging"},
			Image:       "/images/products/braided-cable.jpg",
			Sizes:       []string{"1m", "2m"},
		},
		{
			ID:          "6",
			Name:        "Comet Mechanical Keyboard",
			Description: "Hot-swappable mechanical keyboard with per-key RGB lighting",
			Category:    "Gaming",
			Price:       16500,
			Rating:      4.9,
			Tags:        []string{"gaming", "keyboard", "rgb", "mechanical"},
			Image:       "/images/products/comet-keyboard.jpg",
			Colors:      []string{"Black", "White"},
			Specs:       map[string]string{"Switches": "Linear", "Layout": "75%"},
		},
		{
			ID:          "7",
			Name:        "Lumen Smart Bulb Duo",
			Description: "Two-pack of colour-changing smart bulbs with scene scheduling",
			Category:    "Smart Home",
			Price:       4500,
			OldPrice:    5500,
			Rating:      4.3,
			Tags:        []string{"smart home", "bulb", "rgb", "wifi"},
			Image:       "/images/products/lumen-bulbs.jpg",
		},
		{
			ID:          "8",
			Name:        "Anchor 65W GaN Charger",
			Description: "Compact dual-port GaN wall charger with foldable plug",
			Category:    "Power & Plugs",
			Price:       5800,
			Rating:      4.6,
			Tags:        []string{"charger", "gan", "usb-c"},
			Image:       "/images/products/anchor-charger.jpg",
		},
		{
			ID:          "9",
			Name:        "Echo Bar Bluetooth Speaker",
			Description: "Portable speaker with deep bass, IPX6 rating and 18h playtime",
			Category:    "Audio",
			Price:       9500,
			OldPrice:    11000,
			Rating:      4.5,
			Tags:        []string{"audio", "speaker", "bluetooth", "wireless"},
			Image:       "/images/products/echo-bar.jpg",
		},
		{
			ID:          "10",
			Name:        "Glide Wireless Mouse",
			Description: "Lightweight wireless gaming mouse with 26K DPI optical sensor",
			Category:    "Gaming",
			Price:       7200,
			Rating:      4.6,
			Tags:        []string{"gaming", "mouse", "wireless"},
			Image:       "/images/products/glide-mouse.jpg",
			Colors:      []string{"Black", "Red"},
		},
		{
			ID:          "11",
			Name:        "Sentry Indoor Camera",
			Description: "1080p indoor security camera with motion alerts and night vision",
			Category:    "Smart Home",
			Price:       8800,
			Rating:      4.1,
			Tags:        []string{"smart home", "camera", "security"},
			Image:       "/images/products/sentry-camera.jpg",
		},
		{
			ID:          "12",
			Name:        "Trek Laptop Stand",
			Description: "Foldable aluminium laptop stand with six height settings",
			Category:    "Accessories",
			Price:       3900,
			OldPrice:    4800,
			Rating:      4.4,
			Tags:        []string{"stand", "laptop", "aluminium"},
			Image:       "/images/products/trek-stand.jpg",
		},
	})
}
