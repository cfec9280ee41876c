package mysql

const upsertRoomSQL = `
INSERT INTO rooms
  (id, slug, name, description, long_description, rate, currency,
   guests, beds, sqft, stars, available, check_in, check_out, amenities)
VALUES
  (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
ON DUPLICATE KEY UPDATE
  slug             = VALUES(slug),
  name             = VALUES(name),
  description      = VALUES(description),
  long_description = VALUES(long_description),
  rate             = VALUES(rate),
  currency         = VALUES(currency),
  guests           = VALUES(guests),
  beds             = VALUES(beds),
  sqft             = VALUES(sqft),
  stars            = VALUES(stars),
  available        = VALUES(available),
  check_in         = VALUES(check_in),
  check_out        = VALUES(check_out),
  amenities        = VALUES(amenities),
  updated_at       = CURRENT_TIMESTAMP
`

// Catalog order is id order.
const listRoomsSQL = `
SELECT
  id, slug, name, description, long_description, rate, currency,
  guests, beds, sqft, stars, available, check_in, check_out, amenities
FROM rooms
ORDER BY id
`
