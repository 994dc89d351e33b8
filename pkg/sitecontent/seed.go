package sitecontent

import "time"

// Default content seeded into an empty store on first read. Editors replace
// it through the admin API; it exists so a fresh deployment renders a
// complete site instead of empty pages.

func defaultSettings() Settings {
	return Settings{
		SiteName:        "MarkasAI",
		Tagline:         "AI untuk Bisnis yang Lebih Efisien",
		Logo:            "/images/logo.png",
		Favicon:         "/favicon.ico",
		MaintenanceMode: false,
		Contact: ContactInfo{
			Email:    "halo@markasai.id",
			Phone:    "+62 812-3456-7890",
			WhatsApp: "+62 812-3456-7890",
			Address:  "Jakarta, Indonesia",
		},
		SEO: SEO{
			Title:       "MarkasAI - Solusi AI untuk Bisnis",
			Description: "MarkasAI membantu bisnis tumbuh lebih cepat dengan produk AI praktis untuk customer service, konten, dan operasional.",
			Keywords:    []string{"AI", "artificial intelligence", "bisnis", "chatbot", "otomasi"},
		},
		UpdatedAt: seedTime,
	}
}

var seedTime = time.Date(2025, time.March, 1, 9, 0, 0, 0, time.UTC)

func defaultBlogPosts() []BlogPost {
	return []BlogPost{
		{
			ID:      "blog-1",
			Title:   "5 Cara AI Meningkatkan Layanan Pelanggan",
			Slug:    "5-cara-ai-meningkatkan-layanan-pelanggan",
			Excerpt: "AI bukan lagi teknologi masa depan. Inilah lima cara praktis AI membantu tim customer service Anda hari ini.",
			Body:    "Layanan pelanggan adalah ujung tombak bisnis. Dengan AI, tim Anda bisa merespons lebih cepat, konsisten, dan tersedia 24/7...",
			Cover:   "/images/blog/ai-customer-service.jpg",
			Tags:    []string{"AI", "Customer Service", "Tips"},
			Status:  StatusPublished,
			Author: Author{
				Name:   "Tim MarkasAI",
				Avatar: "/images/team/markasai.png",
				Bio:    "Tim editorial MarkasAI",
			},
			PublishedAt: seedTime,
			ReadTime:    "5 menit",
			SEO: SEO{
				Title:       "5 Cara AI Meningkatkan Layanan Pelanggan",
				Description: "Lima cara praktis AI membantu tim customer service bisnis Anda.",
				Keywords:    []string{"AI", "customer service"},
			},
		},
		{
			ID:      "blog-2",
			Title:   "Memulai Otomasi Konten dengan AI",
			Slug:    "memulai-otomasi-konten-dengan-ai",
			Excerpt: "Panduan singkat menyusun alur kerja konten yang dibantu AI tanpa kehilangan sentuhan brand Anda.",
			Body:    "Membuat konten berkualitas secara konsisten itu berat. AI bisa mengambil alih pekerjaan repetitif sehingga tim kreatif fokus pada strategi...",
			Cover:   "/images/blog/otomasi-konten.jpg",
			Tags:    []string{"AI", "Konten", "Produktivitas"},
			Status:  StatusPublished,
			Author: Author{
				Name:   "Tim MarkasAI",
				Avatar: "/images/team/markasai.png",
			},
			PublishedAt: seedTime.AddDate(0, 0, -14),
			ReadTime:    "7 menit",
			SEO: SEO{
				Title:       "Memulai Otomasi Konten dengan AI",
				Description: "Panduan menyusun alur kerja konten berbantuan AI.",
			},
		},
	}
}

func defaultProducts() []Product {
	return []Product{
		{
			ID:          "product-1",
			Title:       "AI Customer Service Assistant",
			Slug:        "ai-customer-service-assistant",
			ShortDesc:   "Chatbot AI yang menjawab pelanggan 24/7 dalam bahasa natural.",
			Description: "Asisten AI yang terhubung dengan WhatsApp dan website Anda, menjawab pertanyaan pelanggan secara instan dan meneruskan kasus kompleks ke tim manusia.",
			Category:    "Customer Service",
			HeroImage:   "/images/products/cs-assistant.jpg",
			Features:    []string{"Integrasi WhatsApp", "Jawaban 24/7", "Eskalasi ke agen manusia", "Dashboard analitik"},
			Benefits:    []string{"Respons lebih cepat", "Biaya operasional turun", "Pelanggan lebih puas"},
			PriceTiers: []PriceTier{
				{Name: "Starter", Price: "Rp 499.000", Period: "bulan", Features: []string{"1 channel", "1.000 percakapan"}},
				{Name: "Business", Price: "Rp 1.499.000", Period: "bulan", Features: []string{"3 channel", "10.000 percakapan", "Analitik"}, Popular: true},
			},
			FAQ: []FAQItem{
				{Question: "Apakah bisa terhubung dengan WhatsApp Business?", Answer: "Ya, integrasi WhatsApp Business API tersedia di semua paket."},
			},
			Status:    StatusPublished,
			CreatedAt: seedTime,
			SEO: SEO{
				Title:       "AI Customer Service Assistant - MarkasAI",
				Description: "Chatbot AI 24/7 untuk layanan pelanggan bisnis Anda.",
			},
		},
		{
			ID:          "product-2",
			Title:       "AI Content Studio",
			Slug:        "ai-content-studio",
			ShortDesc:   "Produksi konten marketing berbantuan AI untuk tim kecil.",
			Description: "Rangkaian alat AI untuk menulis artikel, caption media sosial, dan materi iklan yang konsisten dengan suara brand Anda.",
			Category:    "Content",
			HeroImage:   "/images/products/content-studio.jpg",
			Features:    []string{"Template konten", "Brand voice", "Penjadwalan", "Kolaborasi tim"},
			Benefits:    []string{"Produksi konten 5x lebih cepat", "Konsistensi brand"},
			PriceTiers: []PriceTier{
				{Name: "Pro", Price: "Rp 299.000", Period: "bulan", Features: []string{"Konten tak terbatas", "3 anggota tim"}},
			},
			Status:    StatusPublished,
			CreatedAt: seedTime.AddDate(0, -1, 0),
			SEO: SEO{
				Title:       "AI Content Studio - MarkasAI",
				Description: "Produksi konten marketing berbantuan AI.",
			},
		},
	}
}

func defaultCaseStudies() []CaseStudy {
	return []CaseStudy{
		{
			ID:       "case-1",
			Title:    "Toko Online Memangkas Waktu Respons 80%",
			Slug:     "toko-online-memangkas-waktu-respons",
			Summary:  "Bagaimana sebuah toko online fashion menangani 3x lebih banyak pertanyaan pelanggan tanpa menambah tim.",
			Client:   "Batik Nusantara",
			Industry: "E-commerce",
			Body:     "Sebelum memakai MarkasAI, tim CS Batik Nusantara kewalahan menjawab ratusan chat per hari...",
			Logo:     "/images/clients/batik-nusantara.png",
			Metrics: []Metric{
				{Label: "Waktu respons", Value: "-80%", Description: "dari 2 jam menjadi 24 menit"},
				{Label: "Percakapan ditangani AI", Value: "72%"},
			},
			PublishedAt: seedTime,
			Status:      StatusPublished,
			SEO: SEO{
				Title:       "Studi Kasus: Batik Nusantara",
				Description: "Memangkas waktu respons layanan pelanggan 80% dengan AI.",
			},
		},
	}
}

func defaultTestimonials() []Testimonial {
	return []Testimonial{
		{
			ID:        "testimonial-1",
			Name:      "Rina Wijaya",
			Position:  "Founder",
			Company:   "Batik Nusantara",
			Avatar:    "/images/testimonials/rina.jpg",
			Content:   "Tim CS kami sekarang fokus ke kasus yang benar-benar butuh sentuhan manusia. Sisanya dijawab AI dengan rapi.",
			Rating:    5,
			Featured:  true,
			Status:    StatusPublished,
			CreatedAt: seedTime,
		},
		{
			ID:        "testimonial-2",
			Name:      "Andi Pratama",
			Position:  "Marketing Lead",
			Company:   "Kopi Senja",
			Content:   "Produksi konten kami naik drastis sejak pakai Content Studio. Sangat direkomendasikan.",
			Rating:    5,
			Status:    StatusPublished,
			CreatedAt: seedTime.AddDate(0, 0, -7),
		},
	}
}

func defaultMediaFiles() []MediaFile {
	return []MediaFile{
		{
			ID:         "media-logo",
			Name:       "logo.png",
			URL:        "/images/logo.png",
			Type:       MediaTypeImage,
			Deletable:  false,
			IsStatic:   true,
			UploadedAt: seedTime,
		},
		{
			ID:         "media-og-default",
			Name:       "og-default.jpg",
			URL:        "/images/og-default.jpg",
			Type:       MediaTypeImage,
			Deletable:  false,
			IsStatic:   true,
			UploadedAt: seedTime,
			Dimensions: "1200x630",
		},
	}
}
