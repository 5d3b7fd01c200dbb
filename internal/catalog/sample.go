package catalog

import "wedding_venues/internal/domain"

// sampleHotels is served when the database is unreachable or returns nothing.
// IDs are negative so they never collide with HOTEL.HotelID.
var sampleHotels = []domain.Hotel{
	{ID: -1, Name: "Maui Grand Resort", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.8, PricePerNight: 350, AvailableRooms: 150, TotalRooms: 150, Amenities: "Ceremony Space, Catering, Coordination", Category: "Beachfront Resort"},
	{ID: -2, Name: "Wailea Beach Resort", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.7, PricePerNight: 320, AvailableRooms: 120, TotalRooms: 120, Amenities: "Beach Access, Pool, Spa", Category: "Beachfront Resort"},
	{ID: -3, Name: "Maui Sunset Villas", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.6, PricePerNight: 280, AvailableRooms: 95, TotalRooms: 95, Amenities: "Ocean View, WiFi, Restaurant", Category: "Boutique Hotel"},
	{ID: -4, Name: "Kapalua Bay Resort", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.9, PricePerNight: 420, AvailableRooms: 110, TotalRooms: 110, Amenities: "Private Beach, Golf, Concierge", Category: "Golf Resort"},
	{ID: -5, Name: "Lahaina Shores Hotel", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.5, PricePerNight: 250, AvailableRooms: 200, TotalRooms: 200, Amenities: "Beachfront, WiFi, Pool", Category: "Beachfront Resort"},
	{ID: -6, Name: "The Ritz-Carlton Maui", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.9, PricePerNight: 580, AvailableRooms: 80, TotalRooms: 80, Amenities: "Ultra-Luxury, Spa, Beach Ceremony", Category: "Luxury Resort"},
	{ID: -7, Name: "Hyatt Regency Maui", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.7, PricePerNight: 380, AvailableRooms: 160, TotalRooms: 160, Amenities: "Beach, Pool, Entertainment", Category: "Beachfront Resort"},
	{ID: -8, Name: "Fairmont Kea Lani", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.8, PricePerNight: 500, AvailableRooms: 140, TotalRooms: 140, Amenities: "All-Suite, Beach, Spa", Category: "Luxury Resort"},
	{ID: -9, Name: "Sheraton Maui Resort", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.6, PricePerNight: 340, AvailableRooms: 170, TotalRooms: 170, Amenities: "Beachfront, Pool, Volcano View", Category: "Beachfront Resort"},
	{ID: -10, Name: "Marriott Maui Ocean Club", Location: "Maui, HI", City: "Maui", State: "HI", Rating: 4.5, PricePerNight: 300, AvailableRooms: 190, TotalRooms: 190, Amenities: "Beach Access, WiFi, Restaurant", Category: "Beachfront Resort"},
	{ID: -11, Name: "Royal Hawaiian Honolulu", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.9, PricePerNight: 480, AvailableRooms: 180, TotalRooms: 180, Amenities: "Waikiki Beach, Luxury, Fine Dining", Category: "Urban Luxury"},
	{ID: -12, Name: "Hilton Hawaiian Village", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.7, PricePerNight: 350, AvailableRooms: 300, TotalRooms: 300, Amenities: "Beach, Pool, Entertainment", Category: "Beachfront Resort"},
	{ID: -13, Name: "Moana Surfrider Hotel", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.8, PricePerNight: 410, AvailableRooms: 130, TotalRooms: 130, Amenities: "Historic, Beach, Restaurant", Category: "Historic Inn"},
	{ID: -14, Name: "Waikiki Beach Marriott", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.6, PricePerNight: 380, AvailableRooms: 170, TotalRooms: 170, Amenities: "Beach View, Pool, Gym", Category: "Beachfront Resort"},
	{ID: -15, Name: "Outrigger Waikiki Beach", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.5, PricePerNight: 290, AvailableRooms: 160, TotalRooms: 160, Amenities: "Beach, WiFi, Restaurant", Category: "Beachfront Resort"},
	{ID: -16, Name: "The Halekulani", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.9, PricePerNight: 650, AvailableRooms: 50, TotalRooms: 50, Amenities: "Ultra-Luxury, Private Beach", Category: "Luxury Resort"},
	{ID: -17, Name: "Sheraton Waikiki", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.6, PricePerNight: 320, AvailableRooms: 250, TotalRooms: 250, Amenities: "Beachfront, Pool, Entertainment", Category: "Beachfront Resort"},
	{ID: -18, Name: "Grand Wailea Maui", Location: "Wailea, HI", City: "Wailea", State: "HI", Rating: 4.7, PricePerNight: 420, AvailableRooms: 200, TotalRooms: 200, Amenities: "All-Inclusive, Pool, Spa", Category: "Beachfront Resort"},
	{ID: -19, Name: "Kahala Hotel & Resort", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.8, PricePerNight: 550, AvailableRooms: 100, TotalRooms: 100, Amenities: "Private Beach, Dolphins, Luxury", Category: "Luxury Resort"},
	{ID: -20, Name: "Waikiki Beachcomber by Outrigger", Location: "Honolulu, HI", City: "Honolulu", State: "HI", Rating: 4.4, PricePerNight: 250, AvailableRooms: 180, TotalRooms: 180, Amenities: "Budget Beachfront, Pool", Category: "Beachfront Resort"},
	{ID: -21, Name: "Miami Luxury Downtown", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.3, PricePerNight: 400, AvailableRooms: 180, TotalRooms: 180, Amenities: "Urban, Rooftop Events, Restaurant", Category: "Urban Luxury"},
	{ID: -22, Name: "Mandarin Oriental Miami", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.8, PricePerNight: 550, AvailableRooms: 130, TotalRooms: 130, Amenities: "Luxury, Spa, Fine Dining", Category: "Urban Luxury"},
	{ID: -23, Name: "Fontainebleau Miami Beach", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.6, PricePerNight: 420, AvailableRooms: 220, TotalRooms: 220, Amenities: "Beach, Pool, Entertainment", Category: "Beachfront Resort"},
	{ID: -24, Name: "The Setai Miami Beach", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.9, PricePerNight: 680, AvailableRooms: 105, TotalRooms: 105, Amenities: "Ultra-Luxury, Spa, Private Beach", Category: "Urban Luxury"},
	{ID: -25, Name: "Betsy Hotel Miami Beach", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.7, PricePerNight: 380, AvailableRooms: 50, TotalRooms: 50, Amenities: "Boutique, Art Gallery, Restaurant", Category: "Boutique Hotel"},
	{ID: -26, Name: "Four Seasons Miami", Location: "Miami, FL", City: "Miami", State: "FL", Rating: 4.9, PricePerNight: 620, AvailableRooms: 150, TotalRooms: 150, Amenities: "Luxury, Bay View, Spa", Category: "Urban Luxury"},
	{ID: -27, Name: "Loews Miami Beach Hotel", Location: "Miami Beach, FL", City: "Miami Beach", State: "FL", Rating: 4.5, PricePerNight: 320, AvailableRooms: 200, TotalRooms: 200, Amenities: "Beach, Pool, Family Friendly", Category: "Beachfront Resort"},
	{ID: -28, Name: "Edition Miami Beach", Location: "Miami Beach, FL", City: "Miami Beach", State: "FL", Rating: 4.8, PricePerNight: 580, AvailableRooms: 120, TotalRooms: 120, Amenities: "Modern Luxury, Beach, Events", Category: "Urban Luxury"},
	{ID: -29, Name: "Key West Ocean View", Location: "Key West, FL", City: "Key West", State: "FL", Rating: 4.4, PricePerNight: 450, AvailableRooms: 85, TotalRooms: 85, Amenities: "Historic Charm, Sunset Venue, WiFi", Category: "Historic Inn"},
	{ID: -30, Name: "Marker Waterfront Resort", Location: "Key West, FL", City: "Key West", State: "FL", Rating: 4.6, PricePerNight: 520, AvailableRooms: 95, TotalRooms: 95, Amenities: "Waterfront, Pool, Restaurant", Category: "Beachfront Resort"},
	{ID: -31, Name: "Tropic Cinema Resort", Location: "Key West, FL", City: "Key West", State: "FL", Rating: 4.5, PricePerNight: 380, AvailableRooms: 70, TotalRooms: 70, Amenities: "Historic, WiFi, Entertainment", Category: "Historic Inn"},
	{ID: -32, Name: "Sunset Key Guest Cottages", Location: "Key West, FL", City: "Key West", State: "FL", Rating: 4.8, PricePerNight: 650, AvailableRooms: 40, TotalRooms: 40, Amenities: "Private Island, Beach, Exclusive", Category: "Villa Resort"},
	{ID: -33, Name: "Hyatt Centric Key West", Location: "Key West, FL", City: "Key West", State: "FL", Rating: 4.6, PricePerNight: 420, AvailableRooms: 80, TotalRooms: 80, Amenities: "Modern, Downtown, Beach", Category: "Boutique Hotel"},
	{ID: -34, Name: "The Marker Waterfront", Location: "Key West, FL", City: "Key West", State: "FL", Rating: 4.7, PricePerNight: 500, AvailableRooms: 90, TotalRooms: 90, Amenities: "Luxury, Pool, Dining", Category: "Urban Luxury"},
	{ID: -35, Name: "The Atlantic Resort", Location: "Fort Lauderdale, FL", City: "Fort Lauderdale", State: "FL", Rating: 4.5, PricePerNight: 340, AvailableRooms: 140, TotalRooms: 140, Amenities: "Beach, Pool, Spa", Category: "Beachfront Resort"},
	{ID: -36, Name: "Boca Beach Club", Location: "Boca Raton, FL", City: "Boca Raton", State: "FL", Rating: 4.7, PricePerNight: 480, AvailableRooms: 115, TotalRooms: 115, Amenities: "Luxury Beach, Golf, Spa", Category: "Golf Resort"},
	{ID: -37, Name: "Ocean Reef Club", Location: "Key Largo, FL", City: "Key Largo", State: "FL", Rating: 4.6, PricePerNight: 420, AvailableRooms: 100, TotalRooms: 100, Amenities: "Private Marina, Golf, Beach", Category: "Golf Resort"},
	{ID: -38, Name: "Lago Mar Resort", Location: "Fort Lauderdale, FL", City: "Fort Lauderdale", State: "FL", Rating: 4.7, PricePerNight: 500, AvailableRooms: 60, TotalRooms: 60, Amenities: "Private Beach, Intimate, Luxury", Category: "Luxury Resort"},
	{ID: -39, Name: "Riverside Hotel", Location: "Fort Lauderdale, FL", City: "Fort Lauderdale", State: "FL", Rating: 4.5, PricePerNight: 280, AvailableRooms: 180, TotalRooms: 180, Amenities: "Waterfront, Historic, Events", Category: "Historic Inn"},
	{ID: -40, Name: "Pelican Grand Beach Resort", Location: "Fort Lauderdale, FL", City: "Fort Lauderdale", State: "FL", Rating: 4.6, PricePerNight: 380, AvailableRooms: 140, TotalRooms: 140, Amenities: "Beach, Pool, Restaurant", Category: "Beachfront Resort"},
	{ID: -41, Name: "Park Hyatt Aviara", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.8, PricePerNight: 520, AvailableRooms: 175, TotalRooms: 175, Amenities: "Golf, Spa, Beach Access", Category: "Golf Resort"},
	{ID: -42, Name: "Fairmont Grand Del Mar", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.9, PricePerNight: 650, AvailableRooms: 150, TotalRooms: 150, Amenities: "Luxury, Golf, Spa", Category: "Golf Resort"},
	{ID: -43, Name: "Hotel del Coronado", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.7, PricePerNight: 480, AvailableRooms: 200, TotalRooms: 200, Amenities: "Historic Beach, Luxury, Events", Category: "Historic Inn"},
	{ID: -44, Name: "Paradise Point Resort", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.5, PricePerNight: 380, AvailableRooms: 160, TotalRooms: 160, Amenities: "Waterfront, Beach, Pool", Category: "Beachfront Resort"},
	{ID: -45, Name: "Scripps Coastal Lodge", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.6, PricePerNight: 420, AvailableRooms: 90, TotalRooms: 90, Amenities: "Ocean View, Spa, Restaurant", Category: "Boutique Hotel"},
	{ID: -46, Name: "Four Seasons San Diego", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.9, PricePerNight: 680, AvailableRooms: 120, TotalRooms: 120, Amenities: "Ultra-Luxury, Beach, Spa", Category: "Luxury Resort"},
	{ID: -47, Name: "Omni San Diego Hotel", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.6, PricePerNight: 400, AvailableRooms: 200, TotalRooms: 200, Amenities: "Waterfront, Downtown, Pool", Category: "Urban Luxury"},
	{ID: -48, Name: "Beach Village Resort", Location: "San Diego, CA", City: "San Diego", State: "CA", Rating: 4.5, PricePerNight: 320, AvailableRooms: 180, TotalRooms: 180, Amenities: "Beach Access, Pool, Family", Category: "Beachfront Resort"},
	{ID: -49, Name: "Malibu Beach Inn", Location: "Malibu, CA", City: "Malibu", State: "CA", Rating: 4.8, PricePerNight: 580, AvailableRooms: 50, TotalRooms: 50, Amenities: "Private Beach, Luxury, WiFi", Category: "Boutique Hotel"},
	{ID: -50, Name: "Surfrider Malibu Resort", Location: "Malibu, CA", City: "Malibu", State: "CA", Rating: 4.6, PricePerNight: 450, AvailableRooms: 60, TotalRooms: 60, Amenities: "Beach, Surf, Ocean View", Category: "Beachfront Resort"},
	{ID: -51, Name: "Santa Barbara Biltmore", Location: "Santa Barbara, CA", City: "Santa Barbara", State: "CA", Rating: 4.8, PricePerNight: 520, AvailableRooms: 130, TotalRooms: 130, Amenities: "Historic, Spa, Beach", Category: "Historic Inn"},
	{ID: -52, Name: "Rosewood Malibu", Location: "Malibu, CA", City: "Malibu", State: "CA", Rating: 4.9, PricePerNight: 750, AvailableRooms: 30, TotalRooms: 30, Amenities: "Ultra-Luxury, Private Beach", Category: "Luxury Resort"},
	{ID: -53, Name: "Scottsdale Desert Resort", Location: "Scottsdale, AZ", City: "Scottsdale", State: "AZ", Rating: 4.2, PricePerNight: 320, AvailableRooms: 120, TotalRooms: 120, Amenities: "Desert Ceremony, Golf, Spa", Category: "Golf Resort"},
	{ID: -54, Name: "Fairmont Scottsdale Princess", Location: "Scottsdale, AZ", City: "Scottsdale", State: "AZ", Rating: 4.8, PricePerNight: 480, AvailableRooms: 180, TotalRooms: 180, Amenities: "Championship Golf, Spa, Wedding", Category: "Golf Resort"},
	{ID: -55, Name: "The Phoenician", Location: "Scottsdale, AZ", City: "Scottsdale", State: "AZ", Rating: 4.9, PricePerNight: 620, AvailableRooms: 200, TotalRooms: 200, Amenities: "Luxury, Golf, Spa, Pool", Category: "Golf Resort"},
	{ID: -56, Name: "Hyatt Regency Scottsdale", Location: "Scottsdale, AZ", City: "Scottsdale", State: "AZ", Rating: 4.5, PricePerNight: 380, AvailableRooms: 160, TotalRooms: 160, Amenities: "Desert Resort, Golf, Pool", Category: "Golf Resort"},
	{ID: -57, Name: "JW Marriott Scottsdale", Location: "Scottsdale, AZ", City: "Scottsdale", State: "AZ", Rating: 4.7, PricePerNight: 420, AvailableRooms: 190, TotalRooms: 190, Amenities: "Championship Golf, Spa", Category: "Golf Resort"},
	{ID: -58, Name: "Four Seasons Scottsdale", Location: "Scottsdale, AZ", City: "Scottsdale", State: "AZ", Rating: 4.9, PricePerNight: 680, AvailableRooms: 100, TotalRooms: 100, Amenities: "Luxury, Golf, Spa", Category: "Luxury Resort"},
	{ID: -59, Name: "The Brown Palace", Location: "Denver, CO", City: "Denver", State: "CO", Rating: 4.7, PricePerNight: 410, AvailableRooms: 240, TotalRooms: 240, Amenities: "Historic, Downtown, Fine Dining", Category: "Historic Inn"},
	{ID: -60, Name: "Four Seasons Denver", Location: "Denver, CO", City: "Denver", State: "CO", Rating: 4.8, PricePerNight: 520, AvailableRooms: 180, TotalRooms: 180, Amenities: "Luxury, Downtown, Spa", Category: "Urban Luxury"},
	{ID: -61, Name: "Beaver Creek Lodge", Location: "Beaver Creek, CO", City: "Beaver Creek", State: "CO", Rating: 4.8, PricePerNight: 480, AvailableRooms: 150, TotalRooms: 150, Amenities: "Mountain, Ski, Wedding", Category: "Mountain Resort"},
	{ID: -62, Name: "St. Julien Hotel & Spa", Location: "Boulder, CO", City: "Boulder", State: "CO", Rating: 4.6, PricePerNight: 380, AvailableRooms: 80, TotalRooms: 80, Amenities: "Luxury, Spa, Flatirons View", Category: "Luxury Resort"},
	{ID: -63, Name: "Hotel Jerome", Location: "Aspen, CO", City: "Aspen", State: "CO", Rating: 4.7, PricePerNight: 520, AvailableRooms: 95, TotalRooms: 95, Amenities: "Historic Luxury, Mountain", Category: "Historic Inn"},
	{ID: -64, Name: "Plaza Hotel New York", Location: "New York, NY", City: "New York", State: "NY", Rating: 4.8, PricePerNight: 800, AvailableRooms: 300, TotalRooms: 300, Amenities: "Iconic, Luxury, Ballroom", Category: "Urban Luxury"},
	{ID: -65, Name: "The Peninsula New York", Location: "New York, NY", City: "New York", State: "NY", Rating: 4.9, PricePerNight: 750, AvailableRooms: 150, TotalRooms: 150, Amenities: "Luxury, Spa, Fine Dining", Category: "Urban Luxury"},
	{ID: -66, Name: "Mandarin Oriental New York", Location: "New York, NY", City: "New York", State: "NY", Rating: 4.9, PricePerNight: 850, AvailableRooms: 190, TotalRooms: 190, Amenities: "Luxury, Spa, Event Spaces", Category: "Urban Luxury"},
	{ID: -67, Name: "St. Regis New York", Location: "New York, NY", City: "New York", State: "NY", Rating: 4.8, PricePerNight: 820, AvailableRooms: 100, TotalRooms: 100, Amenities: "Iconic Luxury, Ballroom", Category: "Urban Luxury"},
	{ID: -68, Name: "The Pierre New York", Location: "New York, NY", City: "New York", State: "NY", Rating: 4.7, PricePerNight: 680, AvailableRooms: 190, TotalRooms: 190, Amenities: "Historic Luxury, Central Park View", Category: "Historic Inn"},
	{ID: -69, Name: "Boston Harbor Hotel", Location: "Boston, MA", City: "Boston", State: "MA", Rating: 4.8, PricePerNight: 480, AvailableRooms: 230, TotalRooms: 230, Amenities: "Waterfront, Historic, Fine Dining", Category: "Urban Luxury"},
	{ID: -70, Name: "Fairmont Copley Plaza", Location: "Boston, MA", City: "Boston", State: "MA", Rating: 4.7, PricePerNight: 420, AvailableRooms: 300, TotalRooms: 300, Amenities: "Historic, Downtown, Luxury", Category: "Historic Inn"},
	{ID: -71, Name: "The Liberty Hotel", Location: "Boston, MA", City: "Boston", State: "MA", Rating: 4.6, PricePerNight: 380, AvailableRooms: 298, TotalRooms: 298, Amenities: "Modern Luxury, Historic Building", Category: "Urban Luxury"},
	{ID: -72, Name: "Mandarin Oriental Boston", Location: "Boston, MA", City: "Boston", State: "MA", Rating: 4.8, PricePerNight: 550, AvailableRooms: 160, TotalRooms: 160, Amenities: "Luxury, Spa, Events", Category: "Urban Luxury"},
	{ID: -73, Name: "Charleston Historic Inn", Location: "Charleston, SC", City: "Charleston", State: "SC", Rating: 4.1, PricePerNight: 320, AvailableRooms: 85, TotalRooms: 85, Amenities: "Colonial Charm, Historic, Southern", Category: "Historic Inn"},
	{ID: -74, Name: "The Vendue", Location: "Charleston, SC", City: "Charleston", State: "SC", Rating: 4.7, PricePerNight: 450, AvailableRooms: 40, TotalRooms: 40, Amenities: "Art Gallery, Boutique, Modern", Category: "Boutique Hotel"},
	{ID: -75, Name: "Planters Inn", Location: "Charleston, SC", City: "Charleston", State: "SC", Rating: 4.6, PricePerNight: 380, AvailableRooms: 60, TotalRooms: 60, Amenities: "Historic, Downtown, Courtyard", Category: "Historic Inn"},
	{ID: -76, Name: "Belmond Charleston Place", Location: "Charleston, SC", City: "Charleston", State: "SC", Rating: 4.8, PricePerNight: 520, AvailableRooms: 150, TotalRooms: 150, Amenities: "Luxury, Historic, Spa", Category: "Urban Luxury"},
	{ID: -77, Name: "The Restoration Hotel", Location: "Charleston, SC", City: "Charleston", State: "SC", Rating: 4.7, PricePerNight: 420, AvailableRooms: 54, TotalRooms: 54, Amenities: "Boutique, Modern, Rooftop", Category: "Boutique Hotel"},
	{ID: -78, Name: "Kehoe House", Location: "Savannah, GA", City: "Savannah", State: "GA", Rating: 4.6, PricePerNight: 340, AvailableRooms: 50, TotalRooms: 50, Amenities: "Historic B&B, Charming, WiFi", Category: "Historic Inn"},
	{ID: -79, Name: "Thunderbird Inn", Location: "Savannah, GA", City: "Savannah", State: "GA", Rating: 4.5, PricePerNight: 290, AvailableRooms: 70, TotalRooms: 70, Amenities: "Retro, Trendy, Pool", Category: "Boutique Hotel"},
	{ID: -80, Name: "Marshall House", Location: "Savannah, GA", City: "Savannah", State: "GA", Rating: 4.4, PricePerNight: 280, AvailableRooms: 68, TotalRooms: 68, Amenities: "Historic, Haunted, Character", Category: "Historic Inn"},
	{ID: -81, Name: "Sentient Bean Hotel", Location: "Savannah, GA", City: "Savannah", State: "GA", Rating: 4.6, PricePerNight: 360, AvailableRooms: 40, TotalRooms: 40, Amenities: "Boutique, Artsy, Downtown", Category: "Boutique Hotel"},
	{ID: -82, Name: "The Roosevelt New Orleans", Location: "New Orleans, LA", City: "New Orleans", State: "LA", Rating: 4.7, PricePerNight: 420, AvailableRooms: 210, TotalRooms: 210, Amenities: "Historic Luxury, Ballroom, French Quarter", Category: "Historic Inn"},
	{ID: -83, Name: "Windsor Court Hotel", Location: "New Orleans, LA", City: "New Orleans", State: "LA", Rating: 4.8, PricePerNight: 500, AvailableRooms: 120, TotalRooms: 120, Amenities: "Luxury, Art Collection, Fine Dining", Category: "Urban Luxury"},
	{ID: -84, Name: "Hotel Monteleone", Location: "New Orleans, LA", City: "New Orleans", State: "LA", Rating: 4.6, PricePerNight: 380, AvailableRooms: 600, TotalRooms: 600, Amenities: "Historic, French Quarter, Rooftop", Category: "Historic Inn"},
	{ID: -85, Name: "Ritz-Carlton New Orleans", Location: "New Orleans, LA", City: "New Orleans", State: "LA", Rating: 4.8, PricePerNight: 580, AvailableRooms: 150, TotalRooms: 150, Amenities: "Luxury, French Quarter, Spa", Category: "Urban Luxury"},
	{ID: -86, Name: "Lake Travis Resort", Location: "Austin, TX", City: "Austin", State: "TX", Rating: 4.5, PricePerNight: 280, AvailableRooms: 150, TotalRooms: 150, Amenities: "Lake View, Pool, Restaurant", Category: "Beachfront Resort"},
	{ID: -87, Name: "Fairmont Austin", Location: "Austin, TX", City: "Austin", State: "TX", Rating: 4.8, PricePerNight: 480, AvailableRooms: 200, TotalRooms: 200, Amenities: "Luxury, Spa, Downtown", Category: "Urban Luxury"},
	{ID: -88, Name: "The Westin Riverwalk", Location: "San Antonio, TX", City: "San Antonio", State: "TX", Rating: 4.6, PricePerNight: 380, AvailableRooms: 140, TotalRooms: 140, Amenities: "River Walk, Luxury, Events", Category: "Urban Luxury"},
	{ID: -89, Name: "Omni Corpus Christi Hotel", Location: "Corpus Christi, TX", City: "Corpus Christi", State: "TX", Rating: 4.5, PricePerNight: 290, AvailableRooms: 200, TotalRooms: 200, Amenities: "Waterfront, Beach, Events", Category: "Beachfront Resort"},
	{ID: -90, Name: "Hilton Dallas Market Center", Location: "Dallas, TX", City: "Dallas", State: "TX", Rating: 4.6, PricePerNight: 320, AvailableRooms: 180, TotalRooms: 180, Amenities: "Downtown, Modern, Events", Category: "Urban Luxury"},
	{ID: -91, Name: "Fort Worth Stockyards Hotel", Location: "Fort Worth, TX", City: "Fort Worth", State: "TX", Rating: 4.4, PricePerNight: 240, AvailableRooms: 100, TotalRooms: 100, Amenities: "Western Theme, Historic", Category: "Historic Inn"},
	{ID: -92, Name: "Fairmont Olympic Hotel", Location: "Seattle, WA", City: "Seattle", State: "WA", Rating: 4.8, PricePerNight: 520, AvailableRooms: 280, TotalRooms: 280, Amenities: "Historic, Luxury, Downtown", Category: "Historic Inn"},
	{ID: -93, Name: "Arctic Ocean Resort", Location: "Seattle, WA", City: "Seattle", State: "WA", Rating: 4.5, PricePerNight: 380, AvailableRooms: 100, TotalRooms: 100, Amenities: "Water View, Modern, WiFi", Category: "Boutique Hotel"},
	{ID: -94, Name: "The Benson Portland", Location: "Portland, OR", City: "Portland", State: "OR", Rating: 4.6, PricePerNight: 380, AvailableRooms: 150, TotalRooms: 150, Amenities: "Historic, Luxury, Downtown", Category: "Historic Inn"},
	{ID: -95, Name: "Salishan Coastal Lodge", Location: "Lincoln City, OR", City: "Lincoln City", State: "OR", Rating: 4.5, PricePerNight: 320, AvailableRooms: 220, TotalRooms: 220, Amenities: "Beach, Golf, Nature", Category: "Golf Resort"},
	{ID: -96, Name: "The Edgewater Seattle", Location: "Seattle, WA", City: "Seattle", State: "WA", Rating: 4.7, PricePerNight: 480, AvailableRooms: 230, TotalRooms: 230, Amenities: "Waterfront, Modern Luxury", Category: "Urban Luxury"},
	{ID: -97, Name: "Bellagio Las Vegas", Location: "Las Vegas, NV", City: "Las Vegas", State: "NV", Rating: 4.7, PricePerNight: 320, AvailableRooms: 1000, TotalRooms: 1000, Amenities: "Strip View, Entertainment, Wedding", Category: "Urban Luxury"},
	{ID: -98, Name: "Caesars Palace", Location: "Las Vegas, NV", City: "Las Vegas", State: "NV", Rating: 4.6, PricePerNight: 280, AvailableRooms: 1100, TotalRooms: 1100, Amenities: "Iconic, Ballroom, Entertainment", Category: "Urban Luxury"},
	{ID: -99, Name: "Wynn Las Vegas", Location: "Las Vegas, NV", City: "Las Vegas", State: "NV", Rating: 4.8, PricePerNight: 420, AvailableRooms: 2700, TotalRooms: 2700, Amenities: "Luxury, Spa, Golf", Category: "Urban Luxury"},
	{ID: -100, Name: "Venetian Las Vegas", Location: "Las Vegas, NV", City: "Las Vegas", State: "NV", Rating: 4.7, PricePerNight: 400, AvailableRooms: 2000, TotalRooms: 2000, Amenities: "All-Suite, Luxury, Spa", Category: "Urban Luxury"},
	{ID: -101, Name: "Mandalay Bay Resort", Location: "Las Vegas, NV", City: "Las Vegas", State: "NV", Rating: 4.5, PricePerNight: 280, AvailableRooms: 3200, TotalRooms: 3200, Amenities: "Beach, Pool, Events", Category: "Beachfront Resort"},
	{ID: -102, Name: "The Grand America", Location: "Salt Lake City, UT", City: "Salt Lake City", State: "UT", Rating: 4.8, PricePerNight: 480, AvailableRooms: 330, TotalRooms: 330, Amenities: "Luxury, Ballroom, Events", Category: "Urban Luxury"},
	{ID: -103, Name: "Park City Marriott", Location: "Park City, UT", City: "Park City", State: "UT", Rating: 4.6, PricePerNight: 380, AvailableRooms: 190, TotalRooms: 190, Amenities: "Mountain, Ski, Events", Category: "Mountain Resort"},
	{ID: -104, Name: "Snowbird Cliff Lodge", Location: "Snowbird, UT", City: "Snowbird", State: "UT", Rating: 4.7, PricePerNight: 420, AvailableRooms: 130, TotalRooms: 130, Amenities: "Mountain, Ski, Spa", Category: "Mountain Resort"},
	{ID: -105, Name: "Jackson Lake Lodge", Location: "Jackson, WY", City: "Jackson", State: "WY", Rating: 4.6, PricePerNight: 380, AvailableRooms: 130, TotalRooms: 130, Amenities: "Mountain View, Lake, Scenic", Category: "Mountain Resort"},
	{ID: -106, Name: "Amangani Resort", Location: "Jackson, WY", City: "Jackson", State: "WY", Rating: 4.9, PricePerNight: 680, AvailableRooms: 30, TotalRooms: 30, Amenities: "Ultra-Luxury, Private, Spa", Category: "Villa Resort"},
	{ID: -107, Name: "Snake River Sporting Club", Location: "Jackson, WY", City: "Jackson", State: "WY", Rating: 4.7, PricePerNight: 500, AvailableRooms: 70, TotalRooms: 70, Amenities: "Luxury, Fly-Fishing, Mountain", Category: "Luxury Resort"},
	{ID: -108, Name: "Mountain Resort Bozeman", Location: "Bozeman, MT", City: "Bozeman", State: "MT", Rating: 4.5, PricePerNight: 320, AvailableRooms: 90, TotalRooms: 90, Amenities: "Mountain, Ski Access, Restaurant", Category: "Mountain Resort"},
	{ID: -109, Name: "Chico Hot Springs Resort", Location: "Pray, MT", City: "Pray", State: "MT", Rating: 4.4, PricePerNight: 280, AvailableRooms: 110, TotalRooms: 110, Amenities: "Hot Springs, Mountain, Historic", Category: "Mountain Resort"},
	{ID: -110, Name: "The St. Paul Hotel", Location: "Saint Paul, MN", City: "Saint Paul", State: "MN", Rating: 4.7, PricePerNight: 380, AvailableRooms: 150, TotalRooms: 150, Amenities: "Historic, Downtown, Luxury", Category: "Historic Inn"},
	{ID: -111, Name: "The Palmer House", Location: "Chicago, IL", City: "Chicago", State: "IL", Rating: 4.8, PricePerNight: 480, AvailableRooms: 300, TotalRooms: 300, Amenities: "Iconic, Luxury, Downtown", Category: "Historic Inn"},
	{ID: -112, Name: "The Peninsula Chicago", Location: "Chicago, IL", City: "Chicago", State: "IL", Rating: 4.9, PricePerNight: 580, AvailableRooms: 200, TotalRooms: 200, Amenities: "Luxury, Spa, Fine Dining", Category: "Urban Luxury"},
	{ID: -113, Name: "Guardian Building Hotel", Location: "Detroit, MI", City: "Detroit", State: "MI", Rating: 4.6, PricePerNight: 340, AvailableRooms: 100, TotalRooms: 100, Amenities: "Art Deco Historic, Luxury", Category: "Historic Inn"},
	{ID: -114, Name: "Renaissance Cleveland Hotel", Location: "Cleveland, OH", City: "Cleveland", State: "OH", Rating: 4.5, PricePerNight: 290, AvailableRooms: 170, TotalRooms: 170, Amenities: "Downtown, Modern, Events", Category: "Urban Luxury"},
	{ID: -115, Name: "Hilton Milwaukee", Location: "Milwaukee, WI", City: "Milwaukee", State: "WI", Rating: 4.5, PricePerNight: 300, AvailableRooms: 190, TotalRooms: 190, Amenities: "Waterfront, Downtown, Events", Category: "Urban Luxury"},
	{ID: -116, Name: "Hotel Fort Des Moines", Location: "Des Moines, IA", City: "Des Moines", State: "IA", Rating: 4.4, PricePerNight: 240, AvailableRooms: 160, TotalRooms: 160, Amenities: "Downtown, Historic, Modern", Category: "Historic Inn"},
	{ID: -117, Name: "The Ritz-Carlton St. Louis", Location: "Saint Louis, MO", City: "Saint Louis", State: "MO", Rating: 4.8, PricePerNight: 520, AvailableRooms: 200, TotalRooms: 200, Amenities: "Luxury, Fine Dining, Arch View", Category: "Urban Luxury"},
	{ID: -118, Name: "Four Seasons Philadelphia", Location: "Philadelphia, PA", City: "Philadelphia", State: "PA", Rating: 4.9, PricePerNight: 620, AvailableRooms: 200, TotalRooms: 200, Amenities: "Luxury, Spa, Fine Dining", Category: "Urban Luxury"},
	{ID: -119, Name: "The Rittenhouse Hotel", Location: "Philadelphia, PA", City: "Philadelphia", State: "PA", Rating: 4.8, PricePerNight: 580, AvailableRooms: 98, TotalRooms: 98, Amenities: "Luxury, Historic Square, Events", Category: "Urban Luxury"},
	{ID: -120, Name: "The Harbor Court", Location: "Baltimore, MD", City: "Baltimore", State: "MD", Rating: 4.6, PricePerNight: 380, AvailableRooms: 195, TotalRooms: 195, Amenities: "Waterfront, Luxury, Events", Category: "Urban Luxury"},
	{ID: -121, Name: "The Hay-Adams", Location: "Washington, DC", City: "Washington", State: "DC", Rating: 4.8, PricePerNight: 620, AvailableRooms: 145, TotalRooms: 145, Amenities: "Luxury, Historic, Iconic", Category: "Historic Inn"},
	{ID: -122, Name: "The Jefferson Hotel", Location: "Richmond, VA", City: "Richmond", State: "VA", Rating: 4.7, PricePerNight: 420, AvailableRooms: 55, TotalRooms: 55, Amenities: "Historic Luxury, Downtown", Category: "Historic Inn"},
	{ID: -123, Name: "The Greenbriar", Location: "White Sulphur Springs, WV", City: "White Sulphur Springs", State: "WV", Rating: 4.7, PricePerNight: 450, AvailableRooms: 700, TotalRooms: 700, Amenities: "Historic, Golf, Spa", Category: "Golf Resort"},
	{ID: -124, Name: "First Colony Inn", Location: "Nags Head, NC", City: "Nags Head", State: "NC", Rating: 4.4, PricePerNight: 280, AvailableRooms: 100, TotalRooms: 100, Amenities: "Beach, WiFi, Restaurant", Category: "Beachfront Resort"},
	{ID: -125, Name: "The Outer Banks Resort", Location: "Kill Devil Hills, NC", City: "Kill Devil Hills", State: "NC", Rating: 4.5, PricePerNight: 320, AvailableRooms: 120, TotalRooms: 120, Amenities: "Beach Access, Pool, Events", Category: "Beachfront Resort"},
	{ID: -126, Name: "The Caribe Resort", Location: "Gulf Shores, AL", City: "Gulf Shores", State: "AL", Rating: 4.5, PricePerNight: 280, AvailableRooms: 180, TotalRooms: 180, Amenities: "Beach, Pool, Waterpark", Category: "Beachfront Resort"},
	{ID: -127, Name: "Gulf State Park Resort", Location: "Gulf Shores, AL", City: "Gulf Shores", State: "AL", Rating: 4.4, PricePerNight: 240, AvailableRooms: 140, TotalRooms: 140, Amenities: "Beach, Nature, Restaurant", Category: "Beachfront Resort"},
	{ID: -128, Name: "Beau Rivage Resort", Location: "Biloxi, MS", City: "Biloxi", State: "MS", Rating: 4.5, PricePerNight: 250, AvailableRooms: 370, TotalRooms: 370, Amenities: "Beachfront, Casino, Events", Category: "Beachfront Resort"},
}
