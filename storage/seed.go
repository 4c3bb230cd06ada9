package storage

import (
	"log"

	"crafts-server/models"
)

// Seed writes the demo catalog and blog into an empty store so a cold
// start has something to sell. Keys that already hold data are left
// untouched.
func (s *Store) Seed() error {
	if !s.Has(KeyProducts) {
		if err := s.Set(KeyProducts, seedProducts()); err != nil {
			return err
		}
		log.Printf("storage: seeded %d products", len(seedProducts()))
	}
	if !s.Has(KeyBlogPosts) {
		if err := s.Set(KeyBlogPosts, seedBlogPosts()); err != nil {
			return err
		}
		log.Printf("storage: seeded %d blog posts", len(seedBlogPosts()))
	}
	return nil
}

func seedProducts() []models.Product {
	return []models.Product{
		{
			ID:       "1",
			Name:     "Handwoven Cotton Scarf",
			Price:    699,
			Category: models.CategoryApparel,
			Image:    "https://via.placeholder.com/400x300.png?text=Cotton+Scarf",
			Description: "A soft and lightweight handwoven cotton scarf, perfect for adding a touch of elegance " +
				"to any outfit. Made with natural dyes and traditional weaving techniques by artisans from Rajasthan.",
			Details: map[string]string{
				"material":   "100% Organic Cotton",
				"dimensions": "180cm x 70cm",
				"origin":     "Jaipur, Rajasthan",
				"craft":      "Handloom Weaving",
			},
			Care:     "Hand wash separately in cold water with a mild detergent. Do not bleach. Dry in shade.",
			Featured: true,
		},
		{
			ID:       "2",
			Name:     "Terracotta Vase",
			Price:    1299,
			Category: models.CategoryHomeDecor,
			Image:    "https://via.placeholder.com/400x300.png?text=Terracotta+Vase",
			Description: "An exquisitely crafted terracotta vase, featuring intricate hand-carved patterns. Ideal " +
				"for fresh flowers or as a standalone decorative piece, bringing an earthy charm to your space.",
			Details: map[string]string{
				"material":   "Natural Clay (Terracotta)",
				"dimensions": "25cm Height",
				"origin":     "Molela, Rajasthan",
				"craft":      "Pottery, Hand-Carving",
			},
			Care:     "Wipe with a soft, dry cloth. Do not use water on the exterior.",
			Featured: true,
		},
		{
			ID:       "3",
			Name:     "Bamboo Basket Set",
			Price:    1999,
			Category: models.CategoryBaskets,
			Image:    "https://via.placeholder.com/400x300.png?text=Bamboo+Basket",
			Description: "A versatile set of three eco-friendly bamboo baskets. Handwoven with sturdy bamboo, they " +
				"are perfect for organizing your home, storing crafts, or as decorative planters.",
			Details: map[string]string{
				"material":   "100% Natural Bamboo",
				"dimensions": "Set of 3 (S, M, L)",
				"origin":     "Tripura",
				"craft":      "Bamboo Weaving",
			},
			Care:     "Wipe clean with a damp cloth. Keep away from direct sunlight and moisture.",
			Featured: false,
		},
		{
			ID:       "4",
			Name:     "Hand-Painted Wall Art",
			Price:    3499,
			Category: models.CategoryArt,
			Image:    "https://via.placeholder.com/400x300.png?text=Wall+Art",
			Description: "A vibrant, hand-painted wall art piece that adds a unique artistic flair to any room. " +
				"Each piece is an original creation, showcasing traditional motifs and contemporary design elements.",
			Details: map[string]string{
				"material":   "Canvas, Acrylic Paints",
				"dimensions": "60cm x 80cm",
				"origin":     "Madhubani, Bihar",
				"craft":      "Madhubani Painting",
			},
			Care:     "Dust lightly with a dry cloth. Avoid exposure to moisture.",
			Featured: true,
		},
	}
}

func seedBlogPosts() []models.BlogPost {
	return []models.BlogPost{
		{
			ID:     "1",
			Title:  "The Art of Handicrafts: A Journey Through Traditions",
			Author: "Admin",
			Date:   "June 15, 2025",
			Tags:   []string{"art", "heritage"},
			Image:  "https://via.placeholder.com/800x400.png?text=Handicrafts",
			Content: "<p>Handicrafts are more than just items; they are stories, histories, and cultural " +
				"expressions passed down through generations. From the intricate weaves of traditional textiles " +
				"to the vibrant patterns of Indian pottery, every piece tells a unique tale of its origin and its " +
				"maker.</p><blockquote>\"Craftsmanship names an enduring, basic human impulse, the desire to do a " +
				"job well for its own sake.\" - Richard Sennett</blockquote><p>Supporting handicrafts means " +
				"supporting the artisans behind them, preserving their art, and celebrating the cultural heritage " +
				"they represent.</p>",
		},
		{
			ID:     "2",
			Title:  "5 Tips for Caring for Your Handmade Products",
			Author: "Admin",
			Date:   "June 10, 2025",
			Tags:   []string{"tips", "product-care"},
			Image:  "https://via.placeholder.com/800x400.png?text=Product+Care",
			Content: "<p>Handmade products require a little extra love. Follow these tips to ensure your treasures " +
				"last a lifetime.</p><h4>1. Read the Care Instructions</h4><p>Always check for specific care " +
				"instructions provided with the product.</p><h4>2. Gentle Cleaning is Key</h4><p>For most textiles, " +
				"gentle hand washing in cold water is best.</p><h4>3. Avoid Harsh Chemicals</h4><p>Bleach and strong " +
				"detergents can damage natural fibers and colors.</p><h4>4. Store Properly</h4><p>Keep your items " +
				"away from direct sunlight and damp environments.</p><h4>5. Embrace Imperfections</h4><p>The small " +
				"variations in handmade items are part of their unique charm and story.</p>",
		},
		{
			ID:     "3",
			Title:  "Empowering Artisans, One Craft at a Time",
			Author: "Community Manager",
			Date:   "May 30, 2025",
			Tags:   []string{"artisans", "community"},
			Image:  "https://via.placeholder.com/800x400.png?text=Our+Artisans",
			Content: "<p>Our mission goes beyond selling products. We are committed to creating sustainable " +
				"livelihoods for our artisan partners. By ensuring fair wages and ethical working conditions, we " +
				"empower them to not only continue their craft but also to build a better future for their families " +
				"and communities.</p><p>Every purchase you make has a direct impact, helping to preserve ancient " +
				"traditions and support the incredible individuals who keep these arts alive.</p>",
		},
	}
}
