package redis

import goredis "github.com/redis/go-redis/v9"

// Scripts return {ok, value}: ok is 1 when the write happened.

// KEYS[1]=hash  ARGV[1]=field  ARGV[2]=amount
var conditionalDebitScript = goredis.NewScript(`
local bal = tonumber(redis.call('HGET', KEYS[1], ARGV[1]) or '0')
local amt = tonumber(ARGV[2])
if bal < amt then
  return {0, bal}
end
return {1, redis.call('HINCRBY', KEYS[1], ARGV[1], -amt)}
`)

// KEYS[1]=inventory  KEYS[2]=stats  ARGV[1]=amount
var placeBetScript = goredis.NewScript(`
local bal = tonumber(redis.call('HGET', KEYS[1], 'fichas_cassino') or '0')
local amt = tonumber(ARGV[1])
if bal < amt then
  return {0, bal}
end
local newBal = redis.call('HINCRBY', KEYS[1], 'fichas_cassino', -amt)
if redis.call('EXISTS', KEYS[2]) == 0 then
  redis.call('HSET', KEYS[2], 'gamesPlayed', 1, 'totalBets', amt, 'winnings', 0, 'losses', amt)
else
  redis.call('HINCRBY', KEYS[2], 'gamesPlayed', 1)
  redis.call('HINCRBY', KEYS[2], 'totalBets', amt)
end
return {1, newBal}
`)

// KEYS[1]=item  KEYS[2]=item index  ARGV[1]=itemId  ARGV[2]=quantity
var removeItemScript = goredis.NewScript(`
local qty = tonumber(redis.call('HGET', KEYS[1], 'quantity') or '0')
local n = tonumber(ARGV[2])
if qty < n then
  return {0, qty}
end
local left = redis.call('HINCRBY', KEYS[1], 'quantity', -n)
if left == 0 and redis.call('HEXISTS', KEYS[1], 'lastUsed') == 0 then
  redis.call('DEL', KEYS[1])
  redis.call('SREM', KEYS[2], ARGV[1])
end
return {1, left}
`)

// KEYS[1]=item  ARGV[1]=usedAtMs  ARGV[2]=consume (1|0)
var useItemScript = goredis.NewScript(`
local qty = tonumber(redis.call('HGET', KEYS[1], 'quantity') or '0')
if qty < 1 then
  return {0, qty}
end
redis.call('HSET', KEYS[1], 'lastUsed', ARGV[1])
if ARGV[2] == '1' then
  qty = redis.call('HINCRBY', KEYS[1], 'quantity', -1)
end
return {1, qty}
`)

// KEYS[1]=inventory  KEYS[2]=item  KEYS[3]=item index  ARGV[1]=itemId  ARGV[2]=quantity  ARGV[3]=cost
var purchaseItemScript = goredis.NewScript(`
local bal = tonumber(redis.call('HGET', KEYS[1], 'fichas_cassino') or '0')
local cost = tonumber(ARGV[3])
if bal < cost then
  return {0, bal}
end
local newBal = redis.call('HINCRBY', KEYS[1], 'fichas_cassino', -cost)
redis.call('HINCRBY', KEYS[2], 'quantity', tonumber(ARGV[2]))
redis.call('SADD', KEYS[3], ARGV[1])
return {1, newBal}
`)
